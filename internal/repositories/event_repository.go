package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubcentral/internal/models/db_models"
)

type EventRepository interface {
	ListAll(ctx context.Context) ([]db_models.Event, error)
	ListSliderEvents(ctx context.Context) ([]db_models.Event, error)
	Add(ctx context.Context, event *db_models.Event) (string, error)
	Update(ctx context.Context, id string, partial map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type eventRepository struct {
	store DocumentStore
}

func NewEventRepository(store DocumentStore) EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) ListAll(ctx context.Context) ([]db_models.Event, error) {
	events := []db_models.Event{}
	if err := r.store.List(ctx, ColEvents, "date", SortDesc, 0, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListSliderEvents(ctx context.Context) ([]db_models.Event, error) {
	events := []db_models.Event{}
	err := r.store.ListFiltered(ctx, ColEvents, bson.M{"showOnSlider": true}, "date", SortDesc, 0, &events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Add(ctx context.Context, event *db_models.Event) (string, error) {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	return r.store.Insert(ctx, ColEvents, event)
}

func (r *eventRepository) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	return r.store.Update(ctx, ColEvents, id, bson.M(partial))
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColEvents, id)
}
