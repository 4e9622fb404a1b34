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

// coachService is the concrete implementation of CoachService
type coachService struct {
	repo repository.CoachRepository
	log  zerolog.Logger
}

func newCoachService(repo repository.CoachRepository, log zerolog.Logger) *coachService {
	return &coachService{
		repo: repo,
		log:  log.With().Str("service", "coaches").Logger(),
	}
}

// List returns all coaches, most recently created first
func (s *coachService) List(ctx context.Context) ([]*models.Coach, error) {
	coaches, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return coaches, nil
}

// Create validates the payload and persists the new coach. Rating and
// student counts start absent; they are filled by external flows later.
func (s *coachService) Create(ctx context.Context, in *models.CoachInput) (*models.Coach, error) {
	if err := validation.ValidateCoach(in); err != nil {
		return nil, err
	}

	coach := &models.Coach{
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Phone:          optText(in.Phone),
		Specialties:    validation.CleanList(in.Specialties),
		Experience:     optText(in.Experience),
		Rating:         nil,
		Students:       nil,
		Status:         models.CoachStatusActive,
		Avatar:         optText(in.Avatar),
		Bio:            optText(in.Bio),
		Certifications: validation.CleanList(in.Certifications),
		JoinedAt:       time.Now(),
		SocialMedia:    trimSocialMedia(in.SocialMedia),
	}

	if err := s.repo.Create(ctx, coach); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", coach.ID).Str("name", coach.Name).Msg("Coach created")
	return coach, nil
}

// Get returns one coach by ID
func (s *coachService) Get(ctx context.Context, id int) (*models.Coach, error) {
	coach, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return coach, nil
}

// Update replaces the editable fields of an existing coach; rating, student
// count and the joined timestamp survive.
func (s *coachService) Update(ctx context.Context, id int, in *models.CoachInput) (*models.Coach, error) {
	coach, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if err := validation.ValidateCoach(in); err != nil {
		return nil, err
	}

	coach.Name = strings.TrimSpace(in.Name)
	coach.Email = strings.TrimSpace(in.Email)
	coach.Phone = optText(in.Phone)
	coach.Specialties = validation.CleanList(in.Specialties)
	coach.Experience = optText(in.Experience)
	coach.Avatar = keepImage(in.Avatar, coach.Avatar)
	coach.Bio = optText(in.Bio)
	coach.Certifications = validation.CleanList(in.Certifications)
	if in.SocialMedia != nil {
		coach.SocialMedia = trimSocialMedia(in.SocialMedia)
	}
	if status := strings.TrimSpace(in.Status); status != "" {
		coach.Status = status
	}

	if err := s.repo.Update(ctx, coach); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", coach.ID).Msg("Coach updated")
	return coach, nil
}

// UpdateStatus patches only the status field
func (s *coachService) UpdateStatus(ctx context.Context, id int, status string) (*models.Coach, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, storeErr(err)
	}
	coach, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	s.log.Info().Int("id", id).Str("status", status).Msg("Coach status changed")
	return coach, nil
}

// Delete removes a coach permanently
func (s *coachService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	s.log.Info().Int("id", id).Msg("Coach deleted")
	return nil
}

// Count returns the total number of coaches
func (s *coachService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}

// trimSocialMedia normalizes the optional social links, collapsing a fully
// empty block to the absent state.
func trimSocialMedia(sm *models.SocialMedia) *models.SocialMedia {
	if sm == nil {
		return nil
	}
	out := &models.SocialMedia{}
	if sm.Instagram != nil {
		out.Instagram = optText(*sm.Instagram)
	}
	if sm.Facebook != nil {
		out.Facebook = optText(*sm.Facebook)
	}
	if sm.YouTube != nil {
		out.YouTube = optText(*sm.YouTube)
	}
	if out.Instagram == nil && out.Facebook == nil && out.YouTube == nil {
		return nil
	}
	return out
}
