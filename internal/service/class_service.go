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

// defaultInstructorID mirrors the admin form default when no valid id is
// supplied; instructor links are informational, not enforced foreign keys.
const defaultInstructorID = 1

// classService is the concrete implementation of ClassService
type classService struct {
	repo repository.ClassRepository
	log  zerolog.Logger
}

func newClassService(repo repository.ClassRepository, log zerolog.Logger) *classService {
	return &classService{
		repo: repo,
		log:  log.With().Str("service", "classes").Logger(),
	}
}

// List returns all classes, most recently created first
func (s *classService) List(ctx context.Context) ([]*models.ClassRecord, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return classes, nil
}

// Create validates the payload, applies defaults and persists the new class
func (s *classService) Create(ctx context.Context, in *models.ClassInput) (*models.ClassRecord, error) {
	if err := validation.ValidateClass(in); err != nil {
		return nil, err
	}

	now := time.Now()
	class := &models.ClassRecord{
		Name:         strings.TrimSpace(in.Name),
		Description:  optText(in.Description),
		Instructor:   strings.TrimSpace(in.Instructor),
		InstructorID: defaultInstructorID,
		Schedule:     optText(in.Schedule),
		Duration:     in.Duration.Ptr(),
		Capacity:     in.Capacity.Ptr(),
		Enrolled:     0,
		Price:        in.Price.Ptr(),
		Status:       models.ClassStatusActive,
		Level:        optText(in.Level),
		Image:        optText(in.Image),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.InstructorID.Valid && in.InstructorID.Value > 0 {
		class.InstructorID = in.InstructorID.Value
	}

	if err := s.repo.Create(ctx, class); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", class.ID).Str("name", class.Name).Msg("Class created")
	return class, nil
}

// Get returns one class by ID
func (s *classService) Get(ctx context.Context, id int) (*models.ClassRecord, error) {
	class, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return class, nil
}

// Update replaces the editable fields of an existing class; the enrolled
// counter and creation timestamp survive.
func (s *classService) Update(ctx context.Context, id int, in *models.ClassInput) (*models.ClassRecord, error) {
	class, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if err := validation.ValidateClass(in); err != nil {
		return nil, err
	}

	class.Name = strings.TrimSpace(in.Name)
	class.Description = optText(in.Description)
	class.Instructor = strings.TrimSpace(in.Instructor)
	if in.InstructorID.Valid && in.InstructorID.Value > 0 {
		class.InstructorID = in.InstructorID.Value
	}
	class.Schedule = optText(in.Schedule)
	class.Duration = in.Duration.Ptr()
	class.Capacity = in.Capacity.Ptr()
	class.Price = in.Price.Ptr()
	class.Level = optText(in.Level)
	class.Image = keepImage(in.Image, class.Image)
	if status := strings.TrimSpace(in.Status); status != "" {
		class.Status = status
	}
	class.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, class); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", class.ID).Msg("Class updated")
	return class, nil
}

// UpdateStatus patches only the status field
func (s *classService) UpdateStatus(ctx context.Context, id int, status string) (*models.ClassRecord, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, storeErr(err)
	}
	class, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	s.log.Info().Int("id", id).Str("status", status).Msg("Class status changed")
	return class, nil
}

// Delete removes a class permanently
func (s *classService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	s.log.Info().Int("id", id).Msg("Class deleted")
	return nil
}

// Count returns the total number of classes
func (s *classService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
