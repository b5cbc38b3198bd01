// Package lead models captured marketing leads: contact data, consent
// flags and the free-form payload a self-assessment tool submitted
// alongside the contact.
package lead

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/echub/compliance-hub-backend/internal/domain/errors"
)

// Well-known lead sources. Tools may submit their own source tags;
// these are the ones the backend itself emits.
const (
	SourceWebsite    = "website"
	SourceReport     = "report"
	SourceQuickCheck = "quick-check"
	SourceNewsletter = "newsletter"
)

// Lead is one captured contact. Tool results (quiz scores, calculator
// output) travel as an opaque key/value payload and are stored verbatim.
type Lead struct {
	ID               uuid.UUID              `json:"id"`
	Email            string                 `json:"email"`
	Name             string                 `json:"name,omitempty"`
	Company          string                 `json:"company,omitempty"`
	Phone            string                 `json:"phone,omitempty"`
	Source           string                 `json:"source"`
	Payload          map[string]interface{} `json:"payload,omitempty"`
	PrivacyConsent   bool                   `json:"privacy_consent"`
	MarketingConsent bool                   `json:"marketing_consent"`
	CreatedAt        time.Time              `json:"created_at"`
}

// NewLead validates and constructs a lead. Privacy consent is mandatory;
// marketing consent is optional and recorded as given.
func NewLead(email, name, company, phone, source string, payload map[string]interface{}, privacyConsent, marketingConsent bool) (*Lead, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.NewValidationError("INVALID_EMAIL", "a valid email address is required")
	}
	if !privacyConsent {
		return nil, errors.NewValidationError("CONSENT_REQUIRED", "privacy consent must be given")
	}
	if source == "" {
		source = SourceWebsite
	}

	return &Lead{
		ID:               uuid.New(),
		Email:            email,
		Name:             strings.TrimSpace(name),
		Company:          strings.TrimSpace(company),
		Phone:            strings.TrimSpace(phone),
		Source:           source,
		Payload:          payload,
		PrivacyConsent:   privacyConsent,
		MarketingConsent: marketingConsent,
		CreatedAt:        time.Now().UTC(),
	}, nil
}
