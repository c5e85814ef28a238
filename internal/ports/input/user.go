package input

import (
	"context"

	"teetime/internal/domain/entities"
)

type UserUseCase interface {
	// Resolve returns the user for email, creating it when absent.
	// created is false when the email was already registered.
	Resolve(ctx context.Context, name, email string) (user *entities.User, created bool, err error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}
