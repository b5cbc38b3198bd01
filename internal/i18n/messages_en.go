package i18n

// messagesEN translates the German source strings of the rule tables.
// Keys absent here intentionally fall back to the German original.
var messagesEN = map[string]string{
	// regulation names and subtitles
	"regulation.dsgvo.name":        "GDPR",
	"regulation.dsgvo.subtitle":    "General Data Protection Regulation",
	"regulation.nis2.name":         "NIS2",
	"regulation.nis2.subtitle":     "Network and Information Security Directive",
	"regulation.ai_act.name":       "EU AI Act",
	"regulation.ai_act.subtitle":   "Regulation on Artificial Intelligence",
	"regulation.dora.name":         "DORA",
	"regulation.dora.subtitle":     "Digital Operational Resilience Act",
	"regulation.cra.name":          "CRA",
	"regulation.cra.subtitle":      "Cyber Resilience Act",
	"regulation.csrd.name":         "CSRD",
	"regulation.csrd.subtitle":     "Corporate Sustainability Reporting Directive",
	"regulation.data_act.name":     "Data Act",
	"regulation.data_act.subtitle": "EU Data Regulation",
	"regulation.eprivacy.name":     "ePrivacy / TTDSG",
	"regulation.eprivacy.subtitle": "Cookies and electronic communications",
	"regulation.eidas.name":        "eIDAS 2.0",
	"regulation.eidas.subtitle":    "European Digital Identity",
	"regulation.bfsg.name":         "Accessibility Act (BFSG)",
	"regulation.bfsg.subtitle":     "German Accessibility Strengthening Act",
	"regulation.hinschg.name":      "Whistleblower Protection Act",
	"regulation.hinschg.subtitle":  "German Whistleblower Protection Act (HinSchG)",
	"regulation.gpsr.name":         "GPSR",
	"regulation.gpsr.subtitle":     "General Product Safety Regulation",
	"regulation.pld.name":          "Product Liability",
	"regulation.pld.subtitle":      "New EU Product Liability Directive",
	"regulation.dsa.name":          "DSA",
	"regulation.dsa.subtitle":      "Digital Services Act",

	// evaluation reasons
	"reason.dsgvo.sensitive":  "Your company processes special categories of personal data (Art. 9 GDPR)",
	"reason.dsgvo.personal":   "Your company processes personal data",
	"reason.dsgvo.default":    "Employee and contact data make the GDPR relevant for virtually every company",
	"reason.nis2.kritis":      "Your company operates critical infrastructure",
	"reason.nis2.essential":   "Your sector falls under NIS2 and your company size reaches the essential-entity threshold",
	"reason.nis2.important":   "Your sector falls under NIS2; your company size is below the essential-entity threshold",
	"reason.nis2.small":       "Your sector is covered, but your company size is below the NIS2 thresholds",
	"reason.nis2.nosector":    "Your sector does not fall under the NIS2 directive",
	"reason.ai_act.deploys":   "Your company deploys or develops AI systems",
	"reason.ai_act.biometric": "Processing biometric data falls into sensitive application areas of the AI Act",
	"reason.ai_act.software":  "As a software or IT company, AI adoption is likely in the short term",
	"reason.ai_act.none":      "No AI usage reported",
	"reason.dora.financial":   "Your company is a financial entity within the meaning of DORA",
	"reason.dora.ict":         "As an ICT provider for financial entities, DORA obligations flow down contractually",
	"reason.dora.none":        "No connection to the financial sector reported",
	"reason.cra.products":     "Your company places products with digital elements on the market",
	"reason.cra.iot":          "Connected components in use: consider CRA requirements for procured products",
	"reason.cra.none":         "No products with digital elements reported",
	"reason.csrd.large":       "Large companies are subject to CSRD reporting",
	"reason.csrd.medium":      "The reporting obligation approaches with the next CSRD waves",
	"reason.csrd.small":       "No reporting obligation is foreseeable for your company size",
	"reason.data_act.connected": "Connected products are subject to the Data Act's access and sharing obligations",
	"reason.data_act.cloud":     "Cloud and data processing services must meet the Data Act's switching obligations",
	"reason.data_act.none":      "No connected products or data services reported",
	"reason.eprivacy.ecommerce": "Tracking and cookies in online sales require legally valid consent",
	"reason.eprivacy.website":   "Even a company website with cookies falls under the ePrivacy rules",
	"reason.eidas.provider":     "Your company offers electronic identification or trust services",
	"reason.eidas.acceptance":   "EUDI wallet acceptance obligations hit your sector first",
	"reason.eidas.none":         "No digital identity obligations reported",
	"reason.bfsg.micro":         "Micro-enterprises are exempt from the BFSG for services",
	"reason.bfsg.ecommerce":     "B2C online retail has been covered by the BFSG since June 2025",
	"reason.bfsg.none":          "No covered products or consumer services reported",
	"reason.hinschg.threshold":  "An internal reporting channel is mandatory from 50 employees",
	"reason.hinschg.below":      "Below the 50-employee threshold",
	"reason.gpsr.consumer":      "Consumer products in (online) retail are subject to the GPSR",
	"reason.gpsr.none":          "No consumer products reported",
	"reason.pld.software":       "The new product liability regime also covers software and digital products",
	"reason.pld.none":           "No liability-relevant products reported",
	"reason.dsa.platform":       "Online platforms are subject to the DSA's due diligence obligations",
	"reason.dsa.hosting":        "Hosting and intermediary services in online retail fall under basic DSA obligations",
	"reason.dsa.none":           "No intermediary services reported",

	// cost line items
	"cost.nis2.gap":          "Gap analysis and risk assessment",
	"cost.nis2.isms":         "Technical measures and ISMS",
	"cost.nis2.incident":     "Reporting and incident processes",
	"cost.nis2.training":     "Training and awareness",
	"cost.dsgvo.audit":       "Data protection audit",
	"cost.dsgvo.tom":         "Technical and organizational measures",
	"cost.dsgvo.records":     "Records and documentation",
	"cost.dsgvo.dpo":         "External data protection officer (per year)",
	"cost.ai_act.inventory":  "AI inventory and risk classification",
	"cost.ai_act.conformity": "Conformity assessment",
	"cost.ai_act.governance": "AI governance and oversight",
	"cost.dora.risk":         "ICT risk management",
	"cost.dora.testing":      "Resilience testing",
	"cost.dora.thirdparty":   "Outsourcing and third-party management",
	"cost.cra.assessment":    "Product security assessment",
	"cost.cra.sdlc":          "Secure development processes",
	"cost.cra.vuln":          "Vulnerability management",
	"cost.csrd.materiality":  "Materiality analysis",
	"cost.csrd.data":         "ESG data collection",
	"cost.csrd.reporting":    "Report preparation and audit",
	"cost.eprivacy.cmp":      "Consent management platform",
	"cost.eprivacy.audit":    "Tracking audit",
	"cost.bfsg.audit":        "Accessibility audit",
	"cost.bfsg.wcag":         "WCAG implementation",
	"cost.hinschg.channel":   "Set up internal reporting channel",
	"cost.hinschg.process":   "Processes and training",
	"cost.gpsr.docs":         "Product safety documentation",
	"cost.gpsr.surveillance": "Market surveillance processes",

	// fine basis
	"fine.basis.fixed":        "Fixed statutory maximum",
	"fine.basis.percent":      "%s of worldwide annual turnover, as it exceeds the fixed cap",
	"fine.basis.fixed_higher": "Fixed cap, as it exceeds the turnover-based maximum",

	// maturity
	"maturity.category.governance":             "Governance and responsibilities",
	"maturity.category.datenschutz":            "Data protection",
	"maturity.category.informationssicherheit": "Information security",
	"maturity.category.risikomanagement":       "Risk management",
	"maturity.category.notfallmanagement":      "Emergency and incident management",
	"maturity.category.schulung":               "Training and awareness",
	"maturity.grade.A":                         "Very well positioned",
	"maturity.grade.B":                         "Well positioned",
	"maturity.grade.C":                         "Room for improvement",
	"maturity.grade.D":                         "Significant gaps",
	"maturity.grade.E":                         "Critical gaps",

	// deadlines
	"deadline.nis2.umsetzung.title":    "NIS2 transposition deadline",
	"deadline.nis2.umsetzung.desc":     "Deadline for transposing the NIS2 directive into national law",
	"deadline.gpsr.anwendung.title":    "GPSR applies",
	"deadline.gpsr.anwendung.desc":     "The General Product Safety Regulation applies directly",
	"deadline.dora.anwendung.title":    "DORA applies",
	"deadline.dora.anwendung.desc":     "Financial entities must meet the DORA requirements",
	"deadline.bfsg.inkrafttreten.title": "BFSG enters into force",
	"deadline.bfsg.inkrafttreten.desc":  "Accessibility requirements for products and services",
	"deadline.ai_act.gpai.title":       "AI Act: GPAI obligations",
	"deadline.ai_act.gpai.desc":        "Obligations for providers of general-purpose AI models",
	"deadline.data_act.anwendung.title": "Data Act applies",
	"deadline.data_act.anwendung.desc":  "Data access and switching obligations become applicable",
	"deadline.csrd.welle.title":        "CSRD: next reporting wave",
	"deadline.csrd.welle.desc":         "Reporting obligation for large companies for fiscal year 2025",
	"deadline.ai_act.hochrisiko.title": "AI Act: high-risk systems",
	"deadline.ai_act.hochrisiko.desc":  "Full obligations for high-risk AI systems",
	"deadline.cra.meldung.title":       "CRA: reporting obligations",
	"deadline.cra.meldung.desc":        "Reporting obligations for actively exploited vulnerabilities begin",
	"deadline.eidas.wallet.title":      "EUDI wallet: acceptance obligations",
	"deadline.eidas.wallet.desc":       "Obligated sectors must accept the EUDI wallet",
	"deadline.cra.anwendung.title":     "CRA: full application",
	"deadline.cra.anwendung.desc":      "The Cyber Resilience Act applies in full",

	// checklists
	"checklist.nis2-1":   "Risk analysis and security concept for network and information systems",
	"checklist.nis2-2":   "Incident response plan with 24h/72h reporting paths",
	"checklist.nis2-3":   "Supply chain security assessed",
	"checklist.nis2-4":   "Business continuity and backup management",
	"checklist.nis2-5":   "Management trained and accountable",
	"checklist.dsgvo-1":  "Records of processing activities maintained",
	"checklist.dsgvo-2":  "Technical and organizational measures documented",
	"checklist.dsgvo-3":  "Data processing agreements concluded",
	"checklist.dsgvo-4":  "Data subject rights processes established",
	"checklist.dsgvo-5":  "Breach notification process (72h) in place",
	"checklist.ai_act-1": "AI inventory of all deployed systems",
	"checklist.ai_act-2": "Risk classification per AI system",
	"checklist.ai_act-3": "Human oversight arranged",
	"checklist.ai_act-4": "Data governance for training data",
	"checklist.ai_act-5": "Transparency obligations towards users implemented",
	"checklist.dora-1":   "ICT risk management framework established",
	"checklist.dora-2":   "ICT incidents classified and reported",
	"checklist.dora-3":   "Digital resilience tested regularly",
	"checklist.dora-4":   "Register of ICT third-party providers maintained",
	"checklist.dora-5":   "Exit strategies for critical providers",
	"checklist.csrd-1":   "Double materiality analysis performed",
	"checklist.csrd-2":   "ESG metrics collected systematically",
	"checklist.csrd-3":   "Climate data (scope 1-3) determined",
	"checklist.csrd-4":   "Reporting process with responsibilities established",
	"checklist.csrd-5":   "Sustainability data ready for audit",
	"checklist.cra-1":    "Security by design in the development process",
	"checklist.cra-2":    "Software bill of materials (SBOM) maintained",
	"checklist.cra-3":    "Coordinated vulnerability disclosure process",
	"checklist.cra-4":    "Security updates over the support period",
	"checklist.cra-5":    "Conformity assessment and CE marking",

	// risks
	"risk.desc.kritisch": "High fine exposure at a very low implementation level",
	"risk.desc.hoch":     "Substantial fine exposure, prioritize implementation",
	"risk.desc.mittel":   "Relevant requirements, plan implementation",

	// roadmap
	"roadmap.phase.1":           "Immediate actions",
	"roadmap.phase.2":           "Short term (3–6 months)",
	"roadmap.phase.3":           "Medium term (6–12 months)",
	"roadmap.action.appoint":    "Appoint a compliance owner and define the mandate",
	"roadmap.action.deadline":   "Deadline “%s” in %d days: prioritize immediate measures",
	"roadmap.action.gap":        "Perform a %s gap analysis",
	"roadmap.action.implement":  "Fully implement %s",
	"roadmap.action.training":   "Set up an employee training program",
	"roadmap.action.plan":       "Monitor %s and plan implementation",
	"roadmap.action.review":     "Establish a regular compliance review (quarterly)",
	"roadmap.role.management":   "Executive management",
	"roadmap.role.compliance":   "Compliance team",
	"roadmap.role.it":           "Business and IT",
	"roadmap.role.hr":           "HR and compliance",
}
