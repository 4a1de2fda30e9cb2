package services

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/unievents/internal/client/client"
	"github.com/dmitrijs2005/unievents/internal/client/models"
)

// EventService wraps the /events endpoints. Like AuthService it returns
// errors normalised by client.Normalize.
type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, in models.EventInput) (*models.Event, error)
	Update(ctx context.Context, id int64, in models.EventInput) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

type eventService struct {
	client client.Client
}

func NewEventService(c client.Client) EventService {
	return &eventService{client: c}
}

func eventPath(id int64) string {
	return "/events/" + strconv.FormatInt(id, 10)
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.client.Get(ctx, "/events", &events); err != nil {
		return nil, client.Normalize(err, "could not load events")
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	var e models.Event
	if err := s.client.Get(ctx, eventPath(id), &e); err != nil {
		return nil, client.Normalize(err, "could not load event")
	}
	return &e, nil
}

func (s *eventService) Create(ctx context.Context, in models.EventInput) (*models.Event, error) {
	var e models.Event
	if err := s.client.Post(ctx, "/events", in, &e); err != nil {
		return nil, client.Normalize(err, "could not create event")
	}
	return &e, nil
}

func (s *eventService) Update(ctx context.Context, id int64, in models.EventInput) (*models.Event, error) {
	var e models.Event
	if err := s.client.Put(ctx, eventPath(id), in, &e); err != nil {
		return nil, client.Normalize(err, "could not update event")
	}
	return &e, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, eventPath(id), nil); err != nil {
		return client.Normalize(err, "could not delete event")
	}
	return nil
}
