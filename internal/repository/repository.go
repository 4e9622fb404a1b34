package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/studio-admin-api/internal/database"
	"github.com/studio-admin-api/internal/models"
)

// PostRepository defines the interface for blog post data operations
type PostRepository interface {
	List(ctx context.Context) ([]*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id int) (*models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// ClassRepository defines the interface for class data operations
type ClassRepository interface {
	List(ctx context.Context) ([]*models.ClassRecord, error)
	Create(ctx context.Context, class *models.ClassRecord) error
	GetByID(ctx context.Context, id int) (*models.ClassRecord, error)
	Update(ctx context.Context, class *models.ClassRecord) error
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// CoachRepository defines the interface for coach data operations
type CoachRepository interface {
	List(ctx context.Context) ([]*models.Coach, error)
	Create(ctx context.Context, coach *models.Coach) error
	GetByID(ctx context.Context, id int) (*models.Coach, error)
	Update(ctx context.Context, coach *models.Coach) error
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// EventRepository defines the interface for event data operations
type EventRepository interface {
	List(ctx context.Context) ([]*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	List(ctx context.Context) ([]*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// AccountRepository defines the interface for account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Post    PostRepository
	Class   ClassRepository
	Coach   CoachRepository
	Event   EventRepository
	Product ProductRepository
	Account AccountRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Post:    NewPostRepo(db),
		Class:   NewClassRepo(db),
		Coach:   NewCoachRepo(db),
		Event:   NewEventRepo(db),
		Product: NewProductRepo(db),
		Account: NewAccountRepo(db),
	}
}

// jsonArg marshals an optional structured field for a JSONB column, passing
// NULL through for absent values. isNil covers the typed-nil pointers the
// models use for "never set".
func jsonArg(v any, isNil bool) (any, error) {
	if isNil {
		return nil, nil
	}
	return json.Marshal(v)
}

// notFoundOnNoRows maps the driver's empty-result error into the taxonomy.
func notFoundOnNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// requireRows converts a zero-row update/delete into NotFound.
func requireRows(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	return nil
}
