package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/echub/compliance-hub-backend/internal/domain/lead"
)

// LeadRepository persists captured leads.
type LeadRepository struct {
	db *pgxpool.Pool
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create stores a new lead. A unique index on (email, source) keeps
// repeated tool submissions from piling up duplicate contacts.
func (r *LeadRepository) Create(ctx context.Context, l *lead.Lead) error {
	payload, err := json.Marshal(l.Payload)
	if err != nil {
		return fmt.Errorf("marshaling lead payload: %w", err)
	}

	query := `
		INSERT INTO leads (
			id, email, name, company, phone, source,
			payload, privacy_consent, marketing_consent, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.Exec(ctx, query,
		l.ID, l.Email, l.Name, l.Company, l.Phone, l.Source,
		payload, l.PrivacyConsent, l.MarketingConsent, l.CreatedAt,
	)
	if err != nil {
		if IsDuplicateKeyViolation(err) {
			return fmt.Errorf("lead %s via %s: %w", l.Email, l.Source, ErrDuplicateKey)
		}
		return fmt.Errorf("inserting lead: %w", err)
	}

	return nil
}

// GetByID loads a single lead.
func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	query := `
		SELECT id, email, name, company, phone, source,
		       payload, privacy_consent, marketing_consent, created_at
		FROM leads
		WHERE id = $1`

	var (
		l       lead.Lead
		payload []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Email, &l.Name, &l.Company, &l.Phone, &l.Source,
		&payload, &l.PrivacyConsent, &l.MarketingConsent, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying lead: %w", err)
	}

	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &l.Payload); err != nil {
			return nil, fmt.Errorf("unmarshaling lead payload: %w", err)
		}
	}

	return &l, nil
}

// ListRecent returns the newest leads, newest first.
func (r *LeadRepository) ListRecent(ctx context.Context, limit int) ([]lead.Lead, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := `
		SELECT id, email, name, company, phone, source,
		       payload, privacy_consent, marketing_consent, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var out []lead.Lead
	for rows.Next() {
		var (
			l       lead.Lead
			payload []byte
		)
		if err := rows.Scan(
			&l.ID, &l.Email, &l.Name, &l.Company, &l.Phone, &l.Source,
			&payload, &l.PrivacyConsent, &l.MarketingConsent, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &l.Payload); err != nil {
				return nil, fmt.Errorf("unmarshaling lead payload: %w", err)
			}
		}
		out = append(out, l)
	}

	return out, rows.Err()
}
