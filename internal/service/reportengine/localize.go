package reportengine

import (
	"fmt"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/i18n"
)

var roleKeys = map[string]string{
	roleManagement: "roadmap.role.management",
	roleCompliance: "roadmap.role.compliance",
	roleITBusiness: "roadmap.role.it",
	roleHR:         "roadmap.role.hr",
}

// localize rewrites every display string of a freshly built aggregate
// into the catalog's locale and renders money, percent and date values.
// Missing catalog keys keep the German source text; nothing is ever
// blanked out.
func localize(data *report.ReportData, catalog *i18n.Catalog, f *i18n.Formatter) {
	regName := func(key, fallback string) string {
		return catalog.Lookup("regulation."+key+".name", fallback)
	}

	for i := range data.Regulations {
		reg := &data.Regulations[i]
		reg.Name = regName(reg.Key, reg.Name)
		reg.Subtitle = catalog.Lookup("regulation."+reg.Key+".subtitle", reg.Subtitle)
		reg.Reason = catalog.Lookup(reg.ReasonKey, reg.Reason)
	}

	for i := range data.Costs {
		cost := &data.Costs[i]
		cost.Name = regName(cost.Key, cost.Name)
		for j := range cost.Breakdown {
			item := &cost.Breakdown[j]
			item.Label = catalog.Lookup(item.LabelKey, item.Label)
		}
	}

	for i := range data.Fines {
		fine := &data.Fines[i]
		fine.Name = regName(fine.Key, fine.Name)
		fine.Basis = catalog.Lookup(fine.BasisKey, fine.Basis)
		fine.Display = f.FormatMoney(fine.MaxFine)
	}

	for i := range data.Maturity.Categories {
		cat := &data.Maturity.Categories[i]
		cat.Title = catalog.Lookup("maturity.category."+cat.Category, cat.Title)
	}
	data.Maturity.GradeLabel = catalog.Lookup("maturity.grade."+data.Maturity.Grade.String(), data.Maturity.GradeLabel)

	for i := range data.Deadlines {
		d := &data.Deadlines[i]
		d.Title = catalog.Lookup(d.TitleKey+".title", d.Title)
		d.Description = catalog.Lookup(d.TitleKey+".desc", d.Description)
	}

	for key, items := range data.Checklists {
		for i := range items {
			items[i].Text = catalog.Lookup("checklist."+items[i].ItemID, items[i].Text)
		}
		data.Checklists[key] = items
	}

	for i := range data.Risks {
		risk := &data.Risks[i]
		risk.Name = regName(risk.Key, risk.Name)
		risk.Description = catalog.Lookup("risk.desc."+risk.Level.String(), risk.Description)
		if risk.MaxFine.IsPositive() {
			risk.FineDisplay = f.FormatMoney(risk.MaxFine)
		}
	}

	for i := range data.Roadmap {
		item := &data.Roadmap[i]
		item.PhaseLabel = catalog.Lookup(fmt.Sprintf("roadmap.phase.%d", item.Phase), item.PhaseLabel)
		if key, ok := roleKeys[item.Role]; ok {
			item.Role = catalog.Lookup(key, item.Role)
		}

		name := catalog.Lookup(item.NameKey, item.Name)
		switch item.ActionKey {
		case "roadmap.action.gap", "roadmap.action.implement", "roadmap.action.plan":
			item.Action = catalog.Lookupf(item.ActionKey, actionTemplates[item.ActionKey], name)
			item.Name = name
		case "roadmap.action.deadline":
			item.Action = catalog.Lookupf(item.ActionKey, actionTemplates[item.ActionKey], name, item.Days)
			item.Name = name
		default:
			item.Action = catalog.Lookup(item.ActionKey, item.Action)
		}
	}
}
