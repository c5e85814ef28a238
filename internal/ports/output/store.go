package output

import "context"

// Repositories groups the repositories bound to one connection or transaction.
type Repositories interface {
	Events() EventRepository
	Enrollments() EnrollmentRepository
}

// Store is the storage root. Reads outside a unit of work see committed
// state; WithinTx runs fn in a single transaction that commits when fn
// returns nil and rolls back otherwise.
type Store interface {
	Repositories
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Repositories) error) error
}
