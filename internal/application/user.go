package application

import (
	"context"
	"strings"

	"teetime/internal/domain"
	"teetime/internal/domain/entities"
	"teetime/internal/ports/input"
	"teetime/internal/ports/output"
)

var _ input.UserUseCase = (*UserService)(nil)

type UserService struct {
	directory output.UserDirectory
}

func NewUserService(directory output.UserDirectory) *UserService {
	return &UserService{directory: directory}
}

// Resolve returns the user for email, creating it when absent.
func (s *UserService) Resolve(ctx context.Context, name, email string) (*entities.User, bool, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" {
		return nil, false, domain.Invalid("name", "is required")
	}
	if email == "" {
		return nil, false, domain.Invalid("email", "is required")
	}
	if !isValidEmail(email) {
		return nil, false, domain.Invalid("email", "is not a valid email address")
	}
	return s.directory.Resolve(ctx, name, email)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, domain.Invalid("email", "is required")
	}
	return s.directory.FindByEmail(ctx, email)
}

// FindByIDs looks up each distinct id once. Unknown ids are absent from
// the result.
func (s *UserService) FindByIDs(ctx context.Context, ids []string) (map[string]entities.User, error) {
	seen := make(map[string]struct{}, len(ids))
	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	return s.directory.FindByIDs(ctx, distinct)
}

func (s *UserService) List(ctx context.Context) ([]entities.User, error) {
	return s.directory.List(ctx)
}

// NormalizeEmail is the directory key for a contact email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isValidEmail does a basic structural check.
func isValidEmail(email string) bool {
	local, domainPart, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domainPart, "@") {
		return false
	}
	return strings.Contains(domainPart, ".")
}
