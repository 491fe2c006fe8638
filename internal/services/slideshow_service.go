package services

import (
	"context"
	"sort"
	"time"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/response_models"
	"clubcentral/internal/repositories"
)

// PhotoSlideTitle is the fixed headline photo slides carry; only event
// slides have a title of their own.
const PhotoSlideTitle = "Welcome to Club Central"

type SlideshowServiceInterface interface {
	BuildFeed(ctx context.Context) ([]response_models.SlideItem, error)
}

type SlideshowService struct {
	photoRepo repositories.PhotoRepository
	eventRepo repositories.EventRepository
}

func NewSlideshowService(photoRepo repositories.PhotoRepository, eventRepo repositories.EventRepository) SlideshowServiceInterface {
	return &SlideshowService{
		photoRepo: photoRepo,
		eventRepo: eventRepo,
	}
}

func (s *SlideshowService) BuildFeed(ctx context.Context) ([]response_models.SlideItem, error) {
	photos, err := s.photoRepo.ListSliderPhotos(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListSliderEvents(ctx)
	if err != nil {
		return nil, err
	}

	return MergeSlides(photos, events), nil
}

// MergeSlides normalizes flagged photos and flagged events into one
// feed ordered newest first. The sort is stable, so items sharing a
// date keep their relative input order. Both inputs empty gives an
// empty feed, not an error.
func MergeSlides(photos []db_models.Photo, events []db_models.Event) []response_models.SlideItem {
	feed := make([]response_models.SlideItem, 0, len(photos)+len(events))

	for _, p := range photos {
		feed = append(feed, response_models.SlideItem{
			ID:          "photo-" + p.ID.Hex(),
			ImageURL:    p.URL,
			Title:       PhotoSlideTitle,
			Description: p.Description,
			Hint:        p.Hint,
			SortDate:    p.UploadedAt,
		})
	}

	for _, e := range events {
		feed = append(feed, response_models.SlideItem{
			ID:          "event-" + e.ID.Hex(),
			ImageURL:    e.PhotoURL,
			Title:       e.Title,
			Description: e.Description,
			Hint:        e.Hint,
			SortDate:    ParseEventDate(e.Date),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].SortDate.After(feed[j].SortDate)
	})

	return feed
}

// ParseEventDate reads the calendar date stored on an event. Unparseable
// dates come back as the zero time, which sinks the slide to the end of
// the feed rather than dropping it.
func ParseEventDate(date string) time.Time {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t
	}
	layouts := []string{"2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t
		}
	}
	return time.Time{}
}
