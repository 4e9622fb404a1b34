package repository

import (
	"context"

	"github.com/studio-admin-api/internal/database"
	"github.com/studio-admin-api/internal/models"
)

// accountRepo is the concrete implementation of AccountRepository
type accountRepo struct {
	db *database.DB
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(db *database.DB) AccountRepository {
	return &accountRepo{db: db}
}

// Create inserts a new account and assigns its identity
func (r *accountRepo) Create(ctx context.Context, a *models.Account) error {
	query := `
		INSERT INTO accounts (name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		a.Name, a.Email, a.PasswordHash, a.Role, a.CreatedAt,
	).Scan(&a.ID)
}

// GetByEmail retrieves an account by email
func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT id, name, email, password_hash, role, created_at FROM accounts WHERE email = $1`
	var a models.Account
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &a, nil
}

// EmailExists checks if an account with the given email exists
func (r *accountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

// Count returns the total number of accounts
func (r *accountRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	return count, err
}
