package response_models

import "time"

// SlideItem is the normalized shape both flagged photos and flagged
// events are mapped into before the feed is sorted.
type SlideItem struct {
	ID          string    `json:"id"`
	ImageURL    string    `json:"imageUrl"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Hint        string    `json:"hint,omitempty"`
	SortDate    time.Time `json:"sortDate"`
}
