package domain

import "context"

// DonationStore persists donation records in an external tabular store.
//
// EnsureInitialized creates the backing table and its header row if they do
// not exist yet and returns the store-specific table identifier. It must be
// idempotent: a second call never duplicates the table or the header row.
//
// Append writes one donation after the last existing row. There is no update
// or delete path; rows are only ever added.
type DonationStore interface {
	EnsureInitialized(ctx context.Context) (int64, error)
	Append(ctx context.Context, donation *Donation) error
}
