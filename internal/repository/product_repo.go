package repository

import (
	"context"

	"github.com/lib/pq"
	"github.com/studio-admin-api/internal/database"
	"github.com/studio-admin-api/internal/models"
)

// productRepo is the concrete implementation of ProductRepository
type productRepo struct {
	db *database.DB
}

// NewProductRepo creates a new product repository
func NewProductRepo(db *database.DB) ProductRepository {
	return &productRepo{db: db}
}

const productColumns = `id, name, slug, category, price, original_price, stock, sold, rating,
	review_count, status, featured, badge, image, images, description, features, sizes,
	colors, tags`

// List retrieves all products, most recently created first
func (r *productRepo) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// Create inserts a new product and assigns its identity
func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, slug, category, price, original_price, stock, sold,
			rating, review_count, status, featured, badge, image, images, description,
			features, sizes, colors, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		p.Name, p.Slug, p.Category, p.Price, p.OriginalPrice, p.Stock, p.Sold, p.Rating,
		p.ReviewCount, p.Status, p.Featured, p.Badge, p.Image, pq.Array(p.Images),
		p.Description, pq.Array(p.Features), pq.Array(p.Sizes), pq.Array(p.Colors),
		pq.Array(p.Tags),
	).Scan(&p.ID)
}

// GetByID retrieves a product by ID
func (r *productRepo) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return product, nil
}

// Update replaces all editable fields of an existing product
func (r *productRepo) Update(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products SET name = $1, slug = $2, category = $3, price = $4,
			original_price = $5, stock = $6, status = $7, featured = $8, badge = $9,
			image = $10, images = $11, description = $12, features = $13, sizes = $14,
			colors = $15, tags = $16
		WHERE id = $17
	`
	return requireRows(r.db.ExecContext(ctx, query,
		p.Name, p.Slug, p.Category, p.Price, p.OriginalPrice, p.Stock, p.Status,
		p.Featured, p.Badge, p.Image, pq.Array(p.Images), p.Description,
		pq.Array(p.Features), pq.Array(p.Sizes), pq.Array(p.Colors), pq.Array(p.Tags), p.ID,
	))
}

// UpdateStatus patches only the status column
func (r *productRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	return requireRows(r.db.ExecContext(ctx,
		`UPDATE products SET status = $1 WHERE id = $2`, status, id))
}

// Delete removes a product by ID
func (r *productRepo) Delete(ctx context.Context, id int) error {
	return requireRows(r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id))
}

// Count returns the total number of products
func (r *productRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Category, &p.Price, &p.OriginalPrice, &p.Stock,
		&p.Sold, &p.Rating, &p.ReviewCount, &p.Status, &p.Featured, &p.Badge, &p.Image,
		pq.Array(&p.Images), &p.Description, pq.Array(&p.Features), pq.Array(&p.Sizes),
		pq.Array(&p.Colors), pq.Array(&p.Tags),
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
