package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/repository"
	"github.com/studio-admin-api/internal/validation"
)

// productService is the concrete implementation of ProductService
type productService struct {
	repo repository.ProductRepository
	log  zerolog.Logger
}

func newProductService(repo repository.ProductRepository, log zerolog.Logger) *productService {
	return &productService{
		repo: repo,
		log:  log.With().Str("service", "products").Logger(),
	}
}

// List returns all products, most recently created first
func (s *productService) List(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return products, nil
}

// Create validates the payload, derives the slug, applies defaults and
// persists the new product
func (s *productService) Create(ctx context.Context, in *models.ProductInput) (*models.Product, error) {
	if err := validation.ValidateProduct(in); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          strings.TrimSpace(in.Name),
		Category:      optText(in.Category),
		Price:         in.Price.Value,
		OriginalPrice: in.OriginalPrice.Ptr(),
		Stock:         in.Stock.Value,
		Sold:          0,
		Rating:        nil,
		ReviewCount:   nil,
		Status:        models.ProductStatusActive,
		Featured:      in.Featured,
		Badge:         optText(in.Badge),
		Image:         optText(in.Image),
		Images:        validation.CleanList(in.Images),
		Description:   optText(in.Description),
		Features:      validation.CleanList(in.Features),
		Sizes:         validation.CleanList(in.Sizes),
		Colors:        validation.CleanList(in.Colors),
		Tags:          validation.CleanList(in.Tags),
	}
	product.Slug = validation.Slug(product.Name)

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", product.ID).Str("slug", product.Slug).Msg("Product created")
	return product, nil
}

// Get returns one product by ID
func (s *productService) Get(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return product, nil
}

// Update replaces the editable fields of an existing product. The slug is
// re-derived only when the name changed; sold and review aggregates survive.
func (s *productService) Update(ctx context.Context, id int, in *models.ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if err := validation.ValidateProduct(in); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name != product.Name {
		product.Slug = validation.Slug(name)
	}
	product.Name = name
	product.Category = optText(in.Category)
	product.Price = in.Price.Value
	product.OriginalPrice = in.OriginalPrice.Ptr()
	product.Stock = in.Stock.Value
	product.Featured = in.Featured
	product.Badge = optText(in.Badge)
	product.Image = keepImage(in.Image, product.Image)
	product.Images = validation.CleanList(in.Images)
	product.Description = optText(in.Description)
	product.Features = validation.CleanList(in.Features)
	product.Sizes = validation.CleanList(in.Sizes)
	product.Colors = validation.CleanList(in.Colors)
	product.Tags = validation.CleanList(in.Tags)
	if status := strings.TrimSpace(in.Status); status != "" {
		product.Status = status
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", product.ID).Msg("Product updated")
	return product, nil
}

// UpdateStatus patches only the status field
func (s *productService) UpdateStatus(ctx context.Context, id int, status string) (*models.Product, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, storeErr(err)
	}
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	s.log.Info().Int("id", id).Str("status", status).Msg("Product status changed")
	return product, nil
}

// Delete removes a product permanently
func (s *productService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	s.log.Info().Int("id", id).Msg("Product deleted")
	return nil
}

// Count returns the total number of products
func (s *productService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
