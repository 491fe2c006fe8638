package services_test

import (
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/services"
)

func TestMergeSlides_Ordering(t *testing.T) {
	// an older photo must sort after a newer event, whatever the source
	photo := db_models.Photo{
		ID:         primitive.NewObjectID(),
		URL:        "https://cdn.example.com/p1.jpg",
		UploadedAt: time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC),
	}
	event := db_models.Event{
		ID:       primitive.NewObjectID(),
		Title:    "Annual Meetup",
		Date:     "2024-08-15",
		PhotoURL: "https://cdn.example.com/e1.jpg",
	}

	feed := services.MergeSlides([]db_models.Photo{photo}, []db_models.Event{event})
	if len(feed) != 2 {
		t.Fatalf("got %d slides, want 2", len(feed))
	}
	if feed[0].ID != "event-"+event.ID.Hex() {
		t.Errorf("first slide = %s, want the newer event", feed[0].ID)
	}
	if feed[1].ID != "photo-"+photo.ID.Hex() {
		t.Errorf("second slide = %s, want the older photo", feed[1].ID)
	}
}

func TestMergeSlides_Normalization(t *testing.T) {
	photo := db_models.Photo{
		ID:          primitive.NewObjectID(),
		URL:         "https://cdn.example.com/p1.jpg",
		Description: "club picnic",
		Hint:        "outdoor group",
		UploadedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	event := db_models.Event{
		ID:          primitive.NewObjectID(),
		Title:       "Charity Run",
		Description: "5k run",
		Date:        "2024-02-01",
		PhotoURL:    "https://cdn.example.com/e1.jpg",
		Hint:        "runners",
	}

	feed := services.MergeSlides([]db_models.Photo{photo}, []db_models.Event{event})

	photoSlide := feed[0]
	if photoSlide.Title != services.PhotoSlideTitle {
		t.Errorf("photo slide title = %q, want %q", photoSlide.Title, services.PhotoSlideTitle)
	}
	if photoSlide.ImageURL != photo.URL || photoSlide.Description != photo.Description || photoSlide.Hint != photo.Hint {
		t.Errorf("photo slide lost fields: %+v", photoSlide)
	}

	eventSlide := feed[1]
	if eventSlide.Title != event.Title {
		t.Errorf("event slide title = %q, want %q", eventSlide.Title, event.Title)
	}
	if !strings.HasPrefix(eventSlide.ID, "event-") || !strings.HasPrefix(photoSlide.ID, "photo-") {
		t.Errorf("slide ids missing source prefixes: %s, %s", eventSlide.ID, photoSlide.ID)
	}
}

func TestMergeSlides_InputOrderIrrelevant(t *testing.T) {
	photos := []db_models.Photo{
		{ID: primitive.NewObjectID(), URL: "a", UploadedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: primitive.NewObjectID(), URL: "b", UploadedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	events := []db_models.Event{
		{ID: primitive.NewObjectID(), Title: "x", Date: "2024-03-01"},
		{ID: primitive.NewObjectID(), Title: "y", Date: "2024-07-01"},
	}

	forward := services.MergeSlides(photos, events)
	reversed := services.MergeSlides(
		[]db_models.Photo{photos[1], photos[0]},
		[]db_models.Event{events[1], events[0]})

	if len(forward) != len(reversed) {
		t.Fatalf("feed lengths differ: %d vs %d", len(forward), len(reversed))
	}
	for i := range forward {
		if forward[i].ID != reversed[i].ID {
			t.Errorf("slide %d differs across input orders: %s vs %s", i, forward[i].ID, reversed[i].ID)
		}
	}
}

func TestMergeSlides_StableOnEqualDates(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	photos := []db_models.Photo{
		{ID: primitive.NewObjectID(), URL: "first", UploadedAt: day},
		{ID: primitive.NewObjectID(), URL: "second", UploadedAt: day},
	}

	feed := services.MergeSlides(photos, nil)
	if feed[0].ImageURL != "first" || feed[1].ImageURL != "second" {
		t.Errorf("equal dates should keep input order, got %s then %s", feed[0].ImageURL, feed[1].ImageURL)
	}
}

func TestMergeSlides_Empty(t *testing.T) {
	feed := services.MergeSlides(nil, nil)
	if feed == nil {
		t.Fatal("empty inputs should give an empty feed, not nil")
	}
	if len(feed) != 0 {
		t.Errorf("got %d slides, want 0", len(feed))
	}
}

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{
			name: "plain calendar date",
			date: "2024-08-15",
			want: time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "date with minutes",
			date: "2024-08-15 18:30",
			want: time.Date(2024, 8, 15, 18, 30, 0, 0, time.UTC),
		},
		{
			name: "date with seconds",
			date: "2024-08-15 18:30:45",
			want: time.Date(2024, 8, 15, 18, 30, 45, 0, time.UTC),
		},
		{
			name: "rfc3339",
			date: "2024-08-15T18:30:00Z",
			want: time.Date(2024, 8, 15, 18, 30, 0, 0, time.UTC),
		},
		{
			name: "garbage gives zero time",
			date: "next tuesday",
			want: time.Time{},
		},
		{
			name: "empty gives zero time",
			date: "",
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.ParseEventDate(tt.date); !got.Equal(tt.want) {
				t.Errorf("ParseEventDate(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
