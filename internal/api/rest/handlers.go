package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/echub/compliance-hub-backend/internal/domain/errors"
	"github.com/echub/compliance-hub-backend/internal/domain/lead"
	"github.com/echub/compliance-hub-backend/internal/domain/report"
	"github.com/echub/compliance-hub-backend/internal/domain/values"
	"github.com/echub/compliance-hub-backend/internal/infrastructure/repository"
	"github.com/echub/compliance-hub-backend/internal/metrics"
	"github.com/echub/compliance-hub-backend/internal/service/leadcapture"
	"github.com/echub/compliance-hub-backend/internal/service/reportengine"
)

// ReportGenerator runs the report pipeline.
type ReportGenerator interface {
	Generate(ctx context.Context, input report.ReportInput) (report.ReportData, error)
}

// ReportStore is the persistence surface for report snapshots.
type ReportStore interface {
	Create(ctx context.Context, data report.ReportData, ruleVersion string) error
	GetByID(ctx context.Context, id string) (*repository.StoredReport, error)
	ListRecent(ctx context.Context, limit int) ([]repository.ReportSummary, error)
	IncrementDownloads(ctx context.Context, id string) error
}

// LeadCapturer records contact submissions.
type LeadCapturer interface {
	Capture(ctx context.Context, req leadcapture.Request) (*lead.Lead, error)
}

// LeadStore lists stored leads for the admin API.
type LeadStore interface {
	ListRecent(ctx context.Context, limit int) ([]lead.Lead, error)
}

// SnapshotCache is the read-through cache in front of the report store.
type SnapshotCache interface {
	Get(ctx context.Context, id string) (report.ReportData, bool)
	Put(ctx context.Context, data report.ReportData)
	Invalidate(ctx context.Context, id string)
}

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	engine    ReportGenerator
	reports   ReportStore
	capturer  LeadCapturer
	leads     LeadStore
	snapshots SnapshotCache
	validate  *validator.Validate
}

// NewHandlers wires the handler set. snapshots may be nil when caching
// is disabled.
func NewHandlers(engine ReportGenerator, reports ReportStore, capturer LeadCapturer, leads LeadStore, snapshots SnapshotCache) *Handlers {
	return &Handlers{
		engine:    engine,
		reports:   reports,
		capturer:  capturer,
		leads:     leads,
		snapshots: snapshots,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// handleGenerateReport runs the pipeline, persists the snapshot and
// returns the full report. The contact behind the report is captured
// as a lead in the same request.
func (h *Handlers) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req generateReportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, err)
		return
	}

	size, err := values.NewCompanySize(req.Profile.CompanySize)
	if err != nil {
		respondError(w, r, apperrors.NewValidationError("INVALID_COMPANY_SIZE",
			"company size must be one of micro, small, medium, large"))
		return
	}

	input := report.ReportInput{
		Profile: report.CompanyProfile{
			CompanyName:      req.Profile.CompanyName,
			ContactName:      req.Profile.ContactName,
			Email:            req.Profile.Email,
			Phone:            req.Profile.Phone,
			Size:             size,
			Sectors:          req.Profile.Sectors,
			DataTypes:        req.Profile.DataTypes,
			Activities:       req.Profile.Activities,
			Locations:        req.Profile.Locations,
			PrivacyConsent:   req.Profile.PrivacyConsent,
			MarketingConsent: req.Profile.MarketingConsent,
		},
		AnnualRevenue: req.AnnualRevenue,
		Locale:        req.Locale,
	}
	for _, a := range req.Answers {
		input.Answers = append(input.Answers, report.MaturityAnswer{
			Category: a.Category,
			Level:    a.Level,
		})
	}

	start := time.Now()
	data, err := h.engine.Generate(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.reports.Create(r.Context(), data, reportengine.RuleTableVersion); err != nil {
		respondError(w, r, fmt.Errorf("storing report: %w", err))
		return
	}
	if h.snapshots != nil {
		h.snapshots.Put(r.Context(), data)
	}

	metrics.RecordReportGenerated(data.Locale, data.Maturity.Grade.String(),
		input.Profile.Size.String(), time.Since(start))

	h.captureReportLead(r.Context(), input, data)

	writeData(w, r, http.StatusCreated, data)
}

// captureReportLead records the report requester as a lead. Failures
// are logged only; the report itself has already been stored.
func (h *Handlers) captureReportLead(ctx context.Context, input report.ReportInput, data report.ReportData) {
	if h.capturer == nil {
		return
	}
	_, err := h.capturer.Capture(ctx, leadcapture.Request{
		Email:   input.Profile.Email,
		Name:    input.Profile.ContactName,
		Company: input.Profile.CompanyName,
		Phone:   input.Profile.Phone,
		Source:  lead.SourceReport,
		Payload: map[string]interface{}{
			"report_id":       data.ID,
			"maturity_grade":  data.Maturity.Grade.String(),
			"overall_percent": data.Maturity.OverallPercent,
		},
		PrivacyConsent:   input.Profile.PrivacyConsent,
		MarketingConsent: input.Profile.MarketingConsent,
	})
	if err != nil {
		slog.WarnContext(ctx, "lead capture alongside report failed",
			"report_id", data.ID,
			"error", err.Error())
	}
}

// handleGetReport serves a stored report, read-through cached.
func (h *Handlers) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if h.snapshots != nil {
		if data, ok := h.snapshots.Get(r.Context(), id); ok {
			metrics.RecordReportCacheLookup(true)
			writeData(w, r, http.StatusOK, data)
			return
		}
		metrics.RecordReportCacheLookup(false)
	}

	stored, err := h.reports.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if h.snapshots != nil {
		h.snapshots.Put(r.Context(), stored.Data)
	}
	writeData(w, r, http.StatusOK, stored.Data)
}

// handleDownloadReport serves the snapshot as a file attachment and
// counts the download. The cache is bypassed so the count and the
// served snapshot always come from the store.
func (h *Handlers) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	stored, err := h.reports.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.reports.IncrementDownloads(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	metrics.RecordReportDownload()

	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", stored.Data.ID+".json"))
	writeJSON(w, http.StatusOK, stored.Data)
}

// handleCaptureLead stores a contact submitted by one of the website
// tools.
func (h *Handlers) handleCaptureLead(w http.ResponseWriter, r *http.Request) {
	var req captureLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, err)
		return
	}

	l, err := h.capturer.Capture(r.Context(), leadcapture.Request{
		Email:            req.Email,
		Name:             req.Name,
		Company:          req.Company,
		Phone:            req.Phone,
		Source:           req.Source,
		Payload:          req.Payload,
		PrivacyConsent:   req.PrivacyConsent,
		MarketingConsent: req.MarketingConsent,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	metrics.RecordLeadCaptured(l.Source)

	writeData(w, r, http.StatusCreated, map[string]interface{}{
		"id":     l.ID,
		"email":  l.Email,
		"source": l.Source,
	})
}

// handleListReports is the admin report listing.
func (h *Handlers) handleListReports(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reports.ListRecent(r.Context(), queryLimit(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, summaries)
}

// handleListLeads is the admin lead listing.
func (h *Handlers) handleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leads.ListRecent(r.Context(), queryLimit(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, leads)
}

func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0 // store applies its default
	}
	return limit
}
