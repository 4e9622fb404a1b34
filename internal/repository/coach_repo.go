package repository

import (
	"context"
	"encoding/json"

	"github.com/lib/pq"
	"github.com/studio-admin-api/internal/database"
	"github.com/studio-admin-api/internal/models"
)

// coachRepo is the concrete implementation of CoachRepository
type coachRepo struct {
	db *database.DB
}

// NewCoachRepo creates a new coach repository
func NewCoachRepo(db *database.DB) CoachRepository {
	return &coachRepo{db: db}
}

const coachColumns = `id, name, email, phone, specialties, experience, rating, students,
	status, avatar, bio, certifications, joined_at, social_media`

// List retrieves all coaches, most recently created first
func (r *coachRepo) List(ctx context.Context) ([]*models.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coaches := []*models.Coach{}
	for rows.Next() {
		coach, err := scanCoach(rows)
		if err != nil {
			return nil, err
		}
		coaches = append(coaches, coach)
	}
	return coaches, rows.Err()
}

// Create inserts a new coach and assigns its identity
func (r *coachRepo) Create(ctx context.Context, c *models.Coach) error {
	social, err := jsonArg(c.SocialMedia, c.SocialMedia == nil)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO coaches (name, email, phone, specialties, experience, rating, students,
			status, avatar, bio, certifications, joined_at, social_media)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		c.Name, c.Email, c.Phone, pq.Array(c.Specialties), c.Experience, c.Rating,
		c.Students, c.Status, c.Avatar, c.Bio, pq.Array(c.Certifications), c.JoinedAt, social,
	).Scan(&c.ID)
}

// GetByID retrieves a coach by ID
func (r *coachRepo) GetByID(ctx context.Context, id int) (*models.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches WHERE id = $1`
	coach, err := scanCoach(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return coach, nil
}

// Update replaces all editable fields of an existing coach
func (r *coachRepo) Update(ctx context.Context, c *models.Coach) error {
	social, err := jsonArg(c.SocialMedia, c.SocialMedia == nil)
	if err != nil {
		return err
	}
	query := `
		UPDATE coaches SET name = $1, email = $2, phone = $3, specialties = $4,
			experience = $5, status = $6, avatar = $7, bio = $8, certifications = $9,
			social_media = $10
		WHERE id = $11
	`
	return requireRows(r.db.ExecContext(ctx, query,
		c.Name, c.Email, c.Phone, pq.Array(c.Specialties), c.Experience, c.Status,
		c.Avatar, c.Bio, pq.Array(c.Certifications), social, c.ID,
	))
}

// UpdateStatus patches only the status column
func (r *coachRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	return requireRows(r.db.ExecContext(ctx,
		`UPDATE coaches SET status = $1 WHERE id = $2`, status, id))
}

// Delete removes a coach by ID
func (r *coachRepo) Delete(ctx context.Context, id int) error {
	return requireRows(r.db.ExecContext(ctx, `DELETE FROM coaches WHERE id = $1`, id))
}

// Count returns the total number of coaches
func (r *coachRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM coaches`).Scan(&count)
	return count, err
}

func scanCoach(row rowScanner) (*models.Coach, error) {
	var c models.Coach
	var socialRaw []byte
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, pq.Array(&c.Specialties), &c.Experience,
		&c.Rating, &c.Students, &c.Status, &c.Avatar, &c.Bio, pq.Array(&c.Certifications),
		&c.JoinedAt, &socialRaw,
	)
	if err != nil {
		return nil, err
	}
	if len(socialRaw) > 0 {
		c.SocialMedia = &models.SocialMedia{}
		if err := json.Unmarshal(socialRaw, c.SocialMedia); err != nil {
			return nil, err
		}
	}
	return &c, nil
}
