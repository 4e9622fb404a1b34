package repository

import (
	"context"
	"encoding/json"

	"github.com/lib/pq"
	"github.com/studio-admin-api/internal/database"
	"github.com/studio-admin-api/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new blog post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

const postColumns = `id, title, slug, excerpt, content, author, author_id, published_at,
	updated_at, status, category, tags, read_time, views, featured, image, seo`

// List retrieves all posts, most recently created first
func (r *postRepo) List(ctx context.Context) ([]*models.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*models.BlogPost{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Create inserts a new post and assigns its identity
func (r *postRepo) Create(ctx context.Context, p *models.BlogPost) error {
	seo, err := jsonArg(p.Seo, p.Seo == nil)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO posts (title, slug, excerpt, content, author, author_id, published_at,
			updated_at, status, category, tags, read_time, views, featured, image, seo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Author, p.AuthorID, p.PublishedAt,
		p.UpdatedAt, p.Status, p.Category, pq.Array(p.Tags), p.ReadTime, p.Views,
		p.Featured, p.Image, seo,
	).Scan(&p.ID)
}

// GetByID retrieves a post by ID
func (r *postRepo) GetByID(ctx context.Context, id int) (*models.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return post, nil
}

// Update replaces all editable fields of an existing post
func (r *postRepo) Update(ctx context.Context, p *models.BlogPost) error {
	seo, err := jsonArg(p.Seo, p.Seo == nil)
	if err != nil {
		return err
	}
	query := `
		UPDATE posts SET title = $1, slug = $2, excerpt = $3, content = $4, author = $5,
			author_id = $6, published_at = $7, updated_at = $8, status = $9, category = $10,
			tags = $11, read_time = $12, featured = $13, image = $14, seo = $15
		WHERE id = $16
	`
	return requireRows(r.db.ExecContext(ctx, query,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Author, p.AuthorID, p.PublishedAt,
		p.UpdatedAt, p.Status, p.Category, pq.Array(p.Tags), p.ReadTime, p.Featured,
		p.Image, seo, p.ID,
	))
}

// UpdateStatus patches only the status column
func (r *postRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	return requireRows(r.db.ExecContext(ctx,
		`UPDATE posts SET status = $1, updated_at = NOW() WHERE id = $2`, status, id))
}

// Delete removes a post by ID
func (r *postRepo) Delete(ctx context.Context, id int) error {
	return requireRows(r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id))
}

// Count returns the total number of posts
func (r *postRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	return count, err
}

// rowScanner abstracts sql.Row and sql.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.BlogPost, error) {
	var p models.BlogPost
	var seoRaw []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Author, &p.AuthorID,
		&p.PublishedAt, &p.UpdatedAt, &p.Status, &p.Category, pq.Array(&p.Tags),
		&p.ReadTime, &p.Views, &p.Featured, &p.Image, &seoRaw,
	)
	if err != nil {
		return nil, err
	}
	if len(seoRaw) > 0 {
		p.Seo = &models.PostSEO{}
		if err := json.Unmarshal(seoRaw, p.Seo); err != nil {
			return nil, err
		}
	}
	return &p, nil
}
