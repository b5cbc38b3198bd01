// Package leadcapture records contacts submitted through the website's
// tools and forms.
package leadcapture

import (
	"context"
	"errors"

	"go.uber.org/zap"

	apperrors "github.com/echub/compliance-hub-backend/internal/domain/errors"
	"github.com/echub/compliance-hub-backend/internal/domain/lead"
	"github.com/echub/compliance-hub-backend/internal/infrastructure/repository"
)

// Store is the persistence surface the service needs.
type Store interface {
	Create(ctx context.Context, l *lead.Lead) error
}

// Service validates and persists leads.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a lead capture service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Request is one lead submission.
type Request struct {
	Email            string
	Name             string
	Company          string
	Phone            string
	Source           string
	Payload          map[string]interface{}
	PrivacyConsent   bool
	MarketingConsent bool
}

// Capture validates the submission and stores the lead. A resubmission
// from the same email and source is treated as success so tools can be
// retried freely.
func (s *Service) Capture(ctx context.Context, req Request) (*lead.Lead, error) {
	l, err := lead.NewLead(req.Email, req.Name, req.Company, req.Phone,
		req.Source, req.Payload, req.PrivacyConsent, req.MarketingConsent)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, l); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			s.logger.Info("duplicate lead ignored",
				zap.String("source", l.Source))
			return l, nil
		}
		s.logger.Error("lead persistence failed",
			zap.String("source", l.Source),
			zap.Error(err))
		return nil, apperrors.NewInternalError("LEAD_STORE_FAILED", "could not store lead").WithCause(err)
	}

	s.logger.Info("lead captured",
		zap.String("lead_id", l.ID.String()),
		zap.String("source", l.Source),
		zap.Bool("marketing_consent", l.MarketingConsent))

	return l, nil
}
