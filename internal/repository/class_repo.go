package repository

import (
	"context"

	"github.com/studio-admin-api/internal/database"
	"github.com/studio-admin-api/internal/models"
)

// classRepo is the concrete implementation of ClassRepository
type classRepo struct {
	db *database.DB
}

// NewClassRepo creates a new class repository
func NewClassRepo(db *database.DB) ClassRepository {
	return &classRepo{db: db}
}

const classColumns = `id, name, description, instructor, instructor_id, schedule, duration,
	capacity, enrolled, price, status, level, image, created_at, updated_at`

// List retrieves all classes, most recently created first
func (r *classRepo) List(ctx context.Context) ([]*models.ClassRecord, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []*models.ClassRecord{}
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

// Create inserts a new class and assigns its identity
func (r *classRepo) Create(ctx context.Context, c *models.ClassRecord) error {
	query := `
		INSERT INTO classes (name, description, instructor, instructor_id, schedule, duration,
			capacity, enrolled, price, status, level, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		c.Name, c.Description, c.Instructor, c.InstructorID, c.Schedule, c.Duration,
		c.Capacity, c.Enrolled, c.Price, c.Status, c.Level, c.Image, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

// GetByID retrieves a class by ID
func (r *classRepo) GetByID(ctx context.Context, id int) (*models.ClassRecord, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`
	class, err := scanClass(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return class, nil
}

// Update replaces all editable fields of an existing class
func (r *classRepo) Update(ctx context.Context, c *models.ClassRecord) error {
	query := `
		UPDATE classes SET name = $1, description = $2, instructor = $3, instructor_id = $4,
			schedule = $5, duration = $6, capacity = $7, price = $8, status = $9, level = $10,
			image = $11, updated_at = $12
		WHERE id = $13
	`
	return requireRows(r.db.ExecContext(ctx, query,
		c.Name, c.Description, c.Instructor, c.InstructorID, c.Schedule, c.Duration,
		c.Capacity, c.Price, c.Status, c.Level, c.Image, c.UpdatedAt, c.ID,
	))
}

// UpdateStatus patches only the status column
func (r *classRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	return requireRows(r.db.ExecContext(ctx,
		`UPDATE classes SET status = $1, updated_at = NOW() WHERE id = $2`, status, id))
}

// Delete removes a class by ID
func (r *classRepo) Delete(ctx context.Context, id int) error {
	return requireRows(r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id))
}

// Count returns the total number of classes
func (r *classRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classes`).Scan(&count)
	return count, err
}

func scanClass(row rowScanner) (*models.ClassRecord, error) {
	var c models.ClassRecord
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Instructor, &c.InstructorID, &c.Schedule,
		&c.Duration, &c.Capacity, &c.Enrolled, &c.Price, &c.Status, &c.Level, &c.Image,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
