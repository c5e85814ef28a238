package output

import (
	"context"

	"teetime/internal/domain/entities"
)

// UserDirectory resolves contact identities to stable user ids.
type UserDirectory interface {
	// Resolve returns the user registered under email, creating it with
	// name when absent; created reports which. email must already be
	// normalized.
	Resolve(ctx context.Context, name, email string) (user *entities.User, created bool, err error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	// FindByIDs returns the users among ids that exist, keyed by id.
	FindByIDs(ctx context.Context, ids []string) (map[string]entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}
