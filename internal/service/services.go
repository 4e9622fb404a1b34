package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/repository"
)

// PostService defines the controller for blog posts
type PostService interface {
	List(ctx context.Context) ([]*models.BlogPost, error)
	Create(ctx context.Context, in *models.BlogPostInput) (*models.BlogPost, error)
	Get(ctx context.Context, id int) (*models.BlogPost, error)
	Update(ctx context.Context, id int, in *models.BlogPostInput) (*models.BlogPost, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.BlogPost, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// ClassService defines the controller for dance classes
type ClassService interface {
	List(ctx context.Context) ([]*models.ClassRecord, error)
	Create(ctx context.Context, in *models.ClassInput) (*models.ClassRecord, error)
	Get(ctx context.Context, id int) (*models.ClassRecord, error)
	Update(ctx context.Context, id int, in *models.ClassInput) (*models.ClassRecord, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.ClassRecord, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// CoachService defines the controller for coaches
type CoachService interface {
	List(ctx context.Context) ([]*models.Coach, error)
	Create(ctx context.Context, in *models.CoachInput) (*models.Coach, error)
	Get(ctx context.Context, id int) (*models.Coach, error)
	Update(ctx context.Context, id int, in *models.CoachInput) (*models.Coach, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.Coach, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// EventService defines the controller for studio events
type EventService interface {
	List(ctx context.Context) ([]*models.Event, error)
	Create(ctx context.Context, in *models.EventInput) (*models.Event, error)
	Get(ctx context.Context, id int) (*models.Event, error)
	Update(ctx context.Context, id int, in *models.EventInput) (*models.Event, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.Event, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// ProductService defines the controller for shop products
type ProductService interface {
	List(ctx context.Context) ([]*models.Product, error)
	Create(ctx context.Context, in *models.ProductInput) (*models.Product, error)
	Get(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, id int, in *models.ProductInput) (*models.Product, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.Product, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// AuthService defines the authentication gate
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*models.Account, error)
	AccountCount(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Post    PostService
	Class   ClassService
	Coach   CoachService
	Event   EventService
	Product ProductService
	Auth    AuthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Post:    newPostService(repos.Post, log),
		Class:   newClassService(repos.Class, log),
		Coach:   newCoachService(repos.Coach, log),
		Event:   newEventService(repos.Event, log),
		Product: newProductService(repos.Product, log),
		Auth:    newAuthService(repos.Account, log),
	}
}

// storeErr classifies a repository failure: NotFound passes through, every
// other driver error is folded into StoreUnavailable so no internal detail
// crosses the boundary.
func storeErr(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
}

// optText trims free text and maps empty input to the absent state.
func optText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// keepImage returns the new image reference when one was supplied, otherwise
// the existing one. Image bytes are handled upstream; only the resulting
// URL or data URI is stored.
func keepImage(input string, existing *string) *string {
	if trimmed := strings.TrimSpace(input); trimmed != "" {
		return &trimmed
	}
	return existing
}

// parseWhen parses a client-supplied timestamp, accepting a full RFC 3339
// stamp or a bare date. Returns the fallback when the input is empty or
// unparsable.
func parseWhen(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return fallback
}
