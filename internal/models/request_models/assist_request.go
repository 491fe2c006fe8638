package request_models

// EventAssistRequest asks the model for an event title + description.
// When ExistingTitle/ExistingDescription are supplied the flow enhances
// them instead of generating from scratch.
type EventAssistRequest struct {
	Topic               string `json:"topic" binding:"required"`
	ExistingTitle       string `json:"existingTitle"`
	ExistingDescription string `json:"existingDescription"`
}

type NotificationAssistRequest struct {
	Topic               string `json:"topic" binding:"required"`
	ExistingTitle       string `json:"existingTitle"`
	ExistingDescription string `json:"existingDescription"`
}

// DescriptionAssistRequest covers the single-field flows (photo and
// achievement descriptions).
type DescriptionAssistRequest struct {
	Subject         string `json:"subject" binding:"required"`
	ExistingContent string `json:"existingContent"`
}
