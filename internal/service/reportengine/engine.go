package reportengine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/echub/compliance-hub-backend/internal/domain/errors"
	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
	"github.com/echub/compliance-hub-backend/internal/i18n"
)

// GenerateReportData runs the full pipeline: regulation evaluation, cost
// estimation, fine exposure, maturity scoring, deadline and checklist
// cross-referencing, risk ranking and roadmap building, then localizes
// every display string. Each stage consumes the previous stage's output
// read-only; the returned aggregate is freshly allocated and immutable.
//
// The clock is an explicit parameter so deadline arithmetic and the
// report id are reproducible in tests.
func GenerateReportData(input report.ReportInput, catalog *i18n.Catalog, now time.Time) report.ReportData {
	profile := input.Profile

	regs := Evaluate(profile)

	relevantKeys := make([]string, 0, len(regs))
	for _, r := range regs {
		if r.Relevance != values.RelevanceNiedrig {
			relevantKeys = append(relevantKeys, r.Key)
		}
	}

	maturity := ScoreMaturity(input.Answers)
	costs := EstimateCosts(relevantKeys, profile.Size, OverallMaturityLevel(input.Answers))

	// Fine exposure is omitted entirely when no usable revenue was
	// supplied; unknown revenue must not read as zero risk.
	var fines []report.FineExposure
	if revenue, err := values.NewMoneyFromString(input.AnnualRevenue, values.EUR); err == nil && revenue.IsPositive() {
		for _, key := range relevantKeys {
			if fine, ok := CalculateFineExposure(key, revenue); ok {
				fines = append(fines, fine)
			}
		}
	}

	deadlines := RelevantDeadlines(regs, now)
	checklists := ChecklistStatuses(input.Answers, regs)
	risks := CriticalRisks(regs, fines, maturity.OverallPercent)
	roadmap := BuildRoadmap(regs, NextDeadline(deadlines), maturity.OverallPercent)

	data := report.ReportData{
		ID:          report.NewReportID(now),
		GeneratedAt: now.UTC(),
		Locale:      catalog.Locale(),
		Profile:     profile,
		Regulations: regs,
		Costs:       costs,
		Fines:       fines,
		Maturity:    maturity,
		Deadlines:   deadlines,
		Checklists:  checklists,
		Risks:       risks,
		Roadmap:     roadmap,
	}

	localize(&data, catalog, i18n.NewFormatter(catalog.Locale()))
	return data
}

// Service wraps the pure pipeline with logging and input checking for
// use by the HTTP layer.
type Service struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a report engine service.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		logger: logger,
		now:    time.Now,
	}
}

// Generate validates the caller contract and runs the pipeline once.
func (s *Service) Generate(ctx context.Context, input report.ReportInput) (report.ReportData, error) {
	if !input.Profile.Size.IsValid() {
		return report.ReportData{}, errors.NewValidationError("INVALID_COMPANY_SIZE",
			"company size must be one of micro, small, medium, large")
	}

	start := s.now()
	catalog := i18n.Builtin(input.Locale)
	data := GenerateReportData(input, catalog, start)

	s.logger.Info("report generated",
		zap.String("report_id", data.ID),
		zap.String("locale", data.Locale),
		zap.String("company_size", input.Profile.Size.String()),
		zap.String("grade", data.Maturity.Grade.String()),
		zap.Int("regulations", len(data.Regulations)),
		zap.Duration("duration", s.now().Sub(start)),
	)
	return data, nil
}
