package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/repository"
	"github.com/studio-admin-api/internal/validation"
)

// postService is the concrete implementation of PostService
type postService struct {
	repo repository.PostRepository
	log  zerolog.Logger
}

func newPostService(repo repository.PostRepository, log zerolog.Logger) *postService {
	return &postService{
		repo: repo,
		log:  log.With().Str("service", "posts").Logger(),
	}
}

// List returns all posts, most recently created first
func (s *postService) List(ctx context.Context) ([]*models.BlogPost, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return posts, nil
}

// Create validates the payload, derives slug and read time, applies defaults
// and persists the new post
func (s *postService) Create(ctx context.Context, in *models.BlogPostInput) (*models.BlogPost, error) {
	if err := validation.ValidatePost(in); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.BlogPost{
		Title:       strings.TrimSpace(in.Title),
		Excerpt:     optText(in.Excerpt),
		Content:     optText(in.Content),
		Author:      strings.TrimSpace(in.Author),
		AuthorID:    in.AuthorID.Value,
		PublishedAt: parseWhen(in.PublishedAt, now),
		UpdatedAt:   now,
		Status:      models.PostStatusDraft,
		Category:    optText(in.Category),
		Tags:        validation.CleanList(in.Tags),
		Views:       0,
		Featured:    in.Featured,
		Image:       optText(in.Image),
		Seo:         in.Seo,
	}
	post.Slug = validation.Slug(post.Title)
	if post.Content != nil {
		rt := validation.ReadTime(*post.Content)
		post.ReadTime = &rt
	}
	// The editor explicitly chooses between saving a draft and publishing.
	if status := strings.TrimSpace(in.Status); status != "" {
		post.Status = status
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", post.ID).Str("slug", post.Slug).Str("status", post.Status).Msg("Post created")
	return post, nil
}

// Get returns one post by ID
func (s *postService) Get(ctx context.Context, id int) (*models.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return post, nil
}

// Update replaces the editable fields of an existing post. The slug is
// re-derived only when the title changed; views and the published timestamp
// survive unless the payload carries replacements.
func (s *postService) Update(ctx context.Context, id int, in *models.BlogPostInput) (*models.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if err := validation.ValidatePost(in); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title != post.Title {
		post.Slug = validation.Slug(title)
	}
	post.Title = title
	post.Excerpt = optText(in.Excerpt)
	post.Content = optText(in.Content)
	post.Author = strings.TrimSpace(in.Author)
	post.AuthorID = in.AuthorID.Value
	post.PublishedAt = parseWhen(in.PublishedAt, post.PublishedAt)
	post.Category = optText(in.Category)
	post.Tags = validation.CleanList(in.Tags)
	post.Featured = in.Featured
	post.Image = keepImage(in.Image, post.Image)
	if in.Seo != nil {
		post.Seo = in.Seo
	}
	if status := strings.TrimSpace(in.Status); status != "" {
		post.Status = status
	}
	post.ReadTime = nil
	if post.Content != nil {
		rt := validation.ReadTime(*post.Content)
		post.ReadTime = &rt
	}
	post.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", post.ID).Msg("Post updated")
	return post, nil
}

// UpdateStatus patches only the status field
func (s *postService) UpdateStatus(ctx context.Context, id int, status string) (*models.BlogPost, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, storeErr(err)
	}
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	s.log.Info().Int("id", id).Str("status", status).Msg("Post status changed")
	return post, nil
}

// Delete removes a post permanently
func (s *postService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	s.log.Info().Int("id", id).Msg("Post deleted")
	return nil
}

// Count returns the total number of posts
func (s *postService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
