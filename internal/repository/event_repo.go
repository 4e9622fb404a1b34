package repository

import (
	"context"

	"github.com/lib/pq"
	"github.com/studio-admin-api/internal/database"
	"github.com/studio-admin-api/internal/models"
)

// eventRepo is the concrete implementation of EventRepository
type eventRepo struct {
	db *database.DB
}

// NewEventRepo creates a new event repository
func NewEventRepo(db *database.DB) EventRepository {
	return &eventRepo{db: db}
}

const eventColumns = `id, title, slug, date, start_time, end_time, location, address, type,
	capacity, registered, price, status, featured, description, image, instructors, tags`

// List retrieves all events, most recently created first
func (r *eventRepo) List(ctx context.Context) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Create inserts a new event and assigns its identity
func (r *eventRepo) Create(ctx context.Context, e *models.Event) error {
	query := `
		INSERT INTO events (title, slug, date, start_time, end_time, location, address, type,
			capacity, registered, price, status, featured, description, image, instructors, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Date, e.Time, e.EndTime, e.Location, e.Address, e.Type,
		e.Capacity, e.Registered, e.Price, e.Status, e.Featured, e.Description, e.Image,
		pq.Array(e.Instructors), pq.Array(e.Tags),
	).Scan(&e.ID)
}

// GetByID retrieves an event by ID
func (r *eventRepo) GetByID(ctx context.Context, id int) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return event, nil
}

// Update replaces all editable fields of an existing event
func (r *eventRepo) Update(ctx context.Context, e *models.Event) error {
	query := `
		UPDATE events SET title = $1, slug = $2, date = $3, start_time = $4, end_time = $5,
			location = $6, address = $7, type = $8, capacity = $9, price = $10, status = $11,
			featured = $12, description = $13, image = $14, instructors = $15, tags = $16
		WHERE id = $17
	`
	return requireRows(r.db.ExecContext(ctx, query,
		e.Title, e.Slug, e.Date, e.Time, e.EndTime, e.Location, e.Address, e.Type,
		e.Capacity, e.Price, e.Status, e.Featured, e.Description, e.Image,
		pq.Array(e.Instructors), pq.Array(e.Tags), e.ID,
	))
}

// UpdateStatus patches only the status column
func (r *eventRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	return requireRows(r.db.ExecContext(ctx,
		`UPDATE events SET status = $1 WHERE id = $2`, status, id))
}

// Delete removes an event by ID
func (r *eventRepo) Delete(ctx context.Context, id int) error {
	return requireRows(r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id))
}

// Count returns the total number of events
func (r *eventRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Date, &e.Time, &e.EndTime, &e.Location, &e.Address,
		&e.Type, &e.Capacity, &e.Registered, &e.Price, &e.Status, &e.Featured,
		&e.Description, &e.Image, pq.Array(&e.Instructors), pq.Array(&e.Tags),
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
