package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/repository"
	"github.com/studio-admin-api/internal/validation"
)

// eventService is the concrete implementation of EventService
type eventService struct {
	repo repository.EventRepository
	log  zerolog.Logger
}

func newEventService(repo repository.EventRepository, log zerolog.Logger) *eventService {
	return &eventService{
		repo: repo,
		log:  log.With().Str("service", "events").Logger(),
	}
}

// List returns all events, most recently created first
func (s *eventService) List(ctx context.Context) ([]*models.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return events, nil
}

// Create validates the payload, derives the slug, applies defaults and
// persists the new event
func (s *eventService) Create(ctx context.Context, in *models.EventInput) (*models.Event, error) {
	if err := validation.ValidateEvent(in); err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       strings.TrimSpace(in.Title),
		Date:        strings.TrimSpace(in.Date),
		Time:        optText(in.Time),
		EndTime:     optText(in.EndTime),
		Location:    optText(in.Location),
		Address:     optText(in.Address),
		Type:        optText(in.Type),
		Capacity:    in.Capacity.Ptr(),
		Registered:  0,
		Price:       in.Price.Ptr(),
		Status:      models.EventStatusUpcoming,
		Featured:    in.Featured,
		Description: optText(in.Description),
		Image:       optText(in.Image),
		Instructors: validation.CleanList(in.Instructors),
		Tags:        validation.CleanList(in.Tags),
	}
	event.Slug = validation.Slug(event.Title)

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", event.ID).Str("slug", event.Slug).Msg("Event created")
	return event, nil
}

// Get returns one event by ID
func (s *eventService) Get(ctx context.Context, id int) (*models.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return event, nil
}

// Update replaces the editable fields of an existing event. The slug is
// re-derived only when the title changed; the registered counter survives.
func (s *eventService) Update(ctx context.Context, id int, in *models.EventInput) (*models.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if err := validation.ValidateEvent(in); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title != event.Title {
		event.Slug = validation.Slug(title)
	}
	event.Title = title
	event.Date = strings.TrimSpace(in.Date)
	event.Time = optText(in.Time)
	event.EndTime = optText(in.EndTime)
	event.Location = optText(in.Location)
	event.Address = optText(in.Address)
	event.Type = optText(in.Type)
	event.Capacity = in.Capacity.Ptr()
	event.Price = in.Price.Ptr()
	event.Featured = in.Featured
	event.Description = optText(in.Description)
	event.Image = keepImage(in.Image, event.Image)
	event.Instructors = validation.CleanList(in.Instructors)
	event.Tags = validation.CleanList(in.Tags)
	if status := strings.TrimSpace(in.Status); status != "" {
		event.Status = status
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, storeErr(err)
	}

	s.log.Info().Int("id", event.ID).Msg("Event updated")
	return event, nil
}

// UpdateStatus patches only the status field
func (s *eventService) UpdateStatus(ctx context.Context, id int, status string) (*models.Event, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, storeErr(err)
	}
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	s.log.Info().Int("id", id).Str("status", status).Msg("Event status changed")
	return event, nil
}

// Delete removes an event permanently
func (s *eventService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	s.log.Info().Int("id", id).Msg("Event deleted")
	return nil
}

// Count returns the total number of events
func (s *eventService) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
