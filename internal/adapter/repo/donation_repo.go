package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"canoesite/internal/domain"
)

// DonationStorePG implements domain.DonationStore on PostgreSQL. It is the
// substitution path for deployments that outgrow the spreadsheet: same
// interface, different store, handlers untouched.
type DonationStorePG struct {
	pool *pgxpool.Pool
}

// NewDonationStore creates a Postgres-backed donation store.
func NewDonationStore(pool *pgxpool.Pool) *DonationStorePG {
	return &DonationStorePG{pool: pool}
}

// EnsureInitialized creates the donations table if it does not exist. The
// returned id is always zero; Postgres has no sheet identifier to report.
func (s *DonationStorePG) EnsureInitialized(ctx context.Context) (int64, error) {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS material_donations (
	id              BIGSERIAL PRIMARY KEY,
	submitted_at    TIMESTAMPTZ NOT NULL,
	name            TEXT NOT NULL,
	email           TEXT NOT NULL,
	phone           TEXT NOT NULL,
	company         TEXT NOT NULL DEFAULT '',
	materials       TEXT NOT NULL,
	quantity        TEXT NOT NULL,
	estimated_value TEXT NOT NULL DEFAULT '',
	comments        TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL DEFAULT 'Pending'
);
`)
	if err != nil {
		return 0, fmt.Errorf("create donations table: %w", err)
	}
	return 0, nil
}

// Append inserts one donation row.
func (s *DonationStorePG) Append(ctx context.Context, donation *domain.Donation) error {
	_, err := s.pool.Exec(ctx, `
INSERT INTO material_donations
	(submitted_at, name, email, phone, company, materials, quantity, estimated_value, comments, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`,
		donation.Timestamp,
		donation.Name,
		donation.Email,
		donation.Phone,
		donation.Company,
		donation.Materials,
		donation.Quantity,
		donation.EstimatedValue,
		donation.Comments,
		donation.Status,
	)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}
