package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/echub/compliance-hub-backend/internal/domain/report"
)

// ReportRepository persists generated report snapshots. The full localized
// aggregate is stored as a jsonb snapshot; a handful of columns are
// denormalized for listing and analytics so the snapshot never has to be
// unpacked for overview queries.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// StoredReport pairs a snapshot with its persistence metadata.
type StoredReport struct {
	Data          report.ReportData
	RuleVersion   string
	DownloadCount int
	CreatedAt     time.Time
}

// Create stores a freshly generated report snapshot.
func (r *ReportRepository) Create(ctx context.Context, data report.ReportData, ruleVersion string) error {
	snapshot, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling report snapshot: %w", err)
	}

	query := `
		INSERT INTO reports (
			id, locale, company_name, contact_email, company_size,
			maturity_grade, overall_percent, rule_version, snapshot, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.Exec(ctx, query,
		data.ID,
		data.Locale,
		data.Profile.CompanyName,
		data.Profile.Email,
		data.Profile.Size.String(),
		data.Maturity.Grade.String(),
		data.Maturity.OverallPercent,
		ruleVersion,
		snapshot,
		data.GeneratedAt,
	)
	if err != nil {
		if IsDuplicateKeyViolation(err) {
			return fmt.Errorf("report %s: %w", data.ID, ErrDuplicateKey)
		}
		return fmt.Errorf("inserting report: %w", err)
	}

	return nil
}

// GetByID loads a report snapshot by its public token.
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*StoredReport, error) {
	query := `
		SELECT snapshot, rule_version, download_count, created_at
		FROM reports
		WHERE id = $1`

	var (
		snapshot []byte
		stored   StoredReport
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snapshot, &stored.RuleVersion, &stored.DownloadCount, &stored.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying report: %w", err)
	}

	if err := json.Unmarshal(snapshot, &stored.Data); err != nil {
		return nil, fmt.Errorf("unmarshaling report snapshot: %w", err)
	}

	return &stored, nil
}

// ReportSummary is the denormalized listing row for the admin overview.
type ReportSummary struct {
	ID             string    `json:"id"`
	Locale         string    `json:"locale"`
	CompanyName    string    `json:"company_name"`
	CompanySize    string    `json:"company_size"`
	MaturityGrade  string    `json:"maturity_grade"`
	OverallPercent float64   `json:"overall_percent"`
	DownloadCount  int       `json:"download_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListRecent returns the newest report summaries, newest first.
func (r *ReportRepository) ListRecent(ctx context.Context, limit int) ([]ReportSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := `
		SELECT id, locale, company_name, company_size,
		       maturity_grade, overall_percent, download_count, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var out []ReportSummary
	for rows.Next() {
		var s ReportSummary
		if err := rows.Scan(
			&s.ID, &s.Locale, &s.CompanyName, &s.CompanySize,
			&s.MaturityGrade, &s.OverallPercent, &s.DownloadCount, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning report summary: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// IncrementDownloads bumps the PDF download counter for a report.
func (r *ReportRepository) IncrementDownloads(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reports SET download_count = download_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("incrementing downloads: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOlderThan removes report snapshots past the retention window and
// returns how many were deleted.
func (r *ReportRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting expired reports: %w", err)
	}
	return tag.RowsAffected(), nil
}
