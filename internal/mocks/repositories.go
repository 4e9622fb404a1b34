// Package mocks provides in-memory repository implementations for testing.
package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/repository"
)

// RecordRepo is an in-memory stand-in for a record repository. Set Err to
// force every call to fail with it.
type RecordRepo[T any] struct {
	mu        sync.Mutex
	records   map[int]*T
	nextID    int
	getID     func(*T) int
	setID     func(*T, int)
	setStatus func(*T, string)

	Err error
}

func newRecordRepo[T any](getID func(*T) int, setID func(*T, int), setStatus func(*T, string)) *RecordRepo[T] {
	return &RecordRepo[T]{
		records:   make(map[int]*T),
		nextID:    1,
		getID:     getID,
		setID:     setID,
		setStatus: setStatus,
	}
}

// List returns all records, most recently created first.
func (r *RecordRepo[T]) List(ctx context.Context) ([]*T, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	records := make([]*T, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return r.getID(records[i]) > r.getID(records[j])
	})
	return records, nil
}

// Create assigns the next identity and stores the record.
func (r *RecordRepo[T]) Create(ctx context.Context, record *T) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setID(record, r.nextID)
	r.records[r.nextID] = record
	r.nextID++
	return nil
}

// GetByID returns the record with the given identity.
func (r *RecordRepo[T]) GetByID(ctx context.Context, id int) (*T, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return record, nil
}

// Update replaces a stored record.
func (r *RecordRepo[T]) Update(ctx context.Context, record *T) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.getID(record)
	if _, ok := r.records[id]; !ok {
		return models.ErrNotFound
	}
	r.records[id] = record
	return nil
}

// UpdateStatus overwrites only the status of a stored record.
func (r *RecordRepo[T]) UpdateStatus(ctx context.Context, id int, status string) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return models.ErrNotFound
	}
	r.setStatus(record, status)
	return nil
}

// Delete removes a stored record.
func (r *RecordRepo[T]) Delete(ctx context.Context, id int) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

// Count returns the number of stored records.
func (r *RecordRepo[T]) Count(ctx context.Context) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records), nil
}

// NewPostRepo creates an in-memory blog post repository
func NewPostRepo() *RecordRepo[models.BlogPost] {
	return newRecordRepo(
		func(p *models.BlogPost) int { return p.ID },
		func(p *models.BlogPost, id int) { p.ID = id },
		func(p *models.BlogPost, s string) { p.Status = s },
	)
}

// NewClassRepo creates an in-memory class repository
func NewClassRepo() *RecordRepo[models.ClassRecord] {
	return newRecordRepo(
		func(c *models.ClassRecord) int { return c.ID },
		func(c *models.ClassRecord, id int) { c.ID = id },
		func(c *models.ClassRecord, s string) { c.Status = s },
	)
}

// NewCoachRepo creates an in-memory coach repository
func NewCoachRepo() *RecordRepo[models.Coach] {
	return newRecordRepo(
		func(c *models.Coach) int { return c.ID },
		func(c *models.Coach, id int) { c.ID = id },
		func(c *models.Coach, s string) { c.Status = s },
	)
}

// NewEventRepo creates an in-memory event repository
func NewEventRepo() *RecordRepo[models.Event] {
	return newRecordRepo(
		func(e *models.Event) int { return e.ID },
		func(e *models.Event, id int) { e.ID = id },
		func(e *models.Event, s string) { e.Status = s },
	)
}

// NewProductRepo creates an in-memory product repository
func NewProductRepo() *RecordRepo[models.Product] {
	return newRecordRepo(
		func(p *models.Product) int { return p.ID },
		func(p *models.Product, id int) { p.ID = id },
		func(p *models.Product, s string) { p.Status = s },
	)
}

// AccountRepo is an in-memory stand-in for the account repository.
type AccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	nextID   int

	Err error
}

// NewAccountRepo creates an in-memory account repository
func NewAccountRepo() *AccountRepo {
	return &AccountRepo{
		accounts: make(map[string]*models.Account),
		nextID:   1,
	}
}

func (r *AccountRepo) Create(ctx context.Context, account *models.Account) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	account.ID = r.nextID
	r.nextID++
	r.accounts[strings.ToLower(account.Email)] = account
	return nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[strings.ToLower(email)]
	if !ok {
		return nil, models.ErrNotFound
	}
	return account, nil
}

func (r *AccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if r.Err != nil {
		return false, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.accounts[strings.ToLower(email)]
	return ok, nil
}

func (r *AccountRepo) Count(ctx context.Context) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts), nil
}

// NewRepositories wires a full set of in-memory repositories.
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Post:    NewPostRepo(),
		Class:   NewClassRepo(),
		Coach:   NewCoachRepo(),
		Event:   NewEventRepo(),
		Product: NewProductRepo(),
		Account: NewAccountRepo(),
	}
}
