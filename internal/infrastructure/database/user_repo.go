package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"teetime/internal/domain"
	"teetime/internal/domain/entities"
	"teetime/internal/ports/output"
)

var _ output.UserDirectory = (*UserRepository)(nil)

// UserRepository is the PostgreSQL-backed user directory.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Resolve is an idempotent get-or-create on users_email_key. The no-op
// update makes RETURNING yield the existing row on conflict; xmax is 0
// only for a row this statement inserted.
func (r *UserRepository) Resolve(ctx context.Context, name, email string) (*entities.User, bool, error) {
	var (
		u        entities.User
		inserted bool
	)
	err := r.db.QueryRow(ctx, `
INSERT INTO users (id, name, email)
VALUES ($1, $2, $3)
ON CONFLICT ON CONSTRAINT users_email_key DO UPDATE SET email = EXCLUDED.email
RETURNING `+userColumns+`, (xmax = 0)`,
		uuid.NewString(), name, email).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("resolve user: %w", err)
	}
	return &u, inserted, nil
}

// FindByIDs returns the users among ids that exist, keyed by id.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) (map[string]entities.User, error) {
	out := make(map[string]entities.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("list users by id: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out[u.ID] = u
	}
	return out, rows.Err()
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, query, arg string) (*entities.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []entities.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
