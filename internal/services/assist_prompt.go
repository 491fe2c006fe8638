package services

import (
	"fmt"
	"strings"
)

// Prompt construction is kept separate from the model call so template
// selection (generate fresh vs enhance existing) is testable without a
// live endpoint.

const titleDescriptionSchema = `{"title": "string", "description": "string"}`
const contentSchema = `{"content": "string"}`

// BuildTitleDescriptionPrompt produces the prompt for the event and
// notification flows. Supplying existing text switches the template
// from "generate new" to "enhance".
func BuildTitleDescriptionPrompt(kind, topic, existingTitle, existingDescription string) string {
	hasExisting := strings.TrimSpace(existingTitle) != "" || strings.TrimSpace(existingDescription) != ""

	if !hasExisting {
		return fmt.Sprintf(`You are writing copy for a club management website.
Generate a new %s title and description about: %s.
Keep the title under 10 words and the description under 60 words.
Return JSON only, matching exactly: %s`, kind, topic, titleDescriptionSchema)
	}

	return fmt.Sprintf(`You are writing copy for a club management website.
Enhance the following %s title and description about: %s.
Keep their meaning but make them clearer and more engaging.
Current title: %s
Current description: %s
Return JSON only, matching exactly: %s`, kind, topic, existingTitle, existingDescription, titleDescriptionSchema)
}

// BuildContentPrompt produces the prompt for the single-field
// description flows (photos, achievements).
func BuildContentPrompt(subject, existingContent string) string {
	if strings.TrimSpace(existingContent) == "" {
		return fmt.Sprintf(`You are writing copy for a club management website.
Generate a new short description (under 40 words) for: %s.
Return JSON only, matching exactly: %s`, subject, contentSchema)
	}

	return fmt.Sprintf(`You are writing copy for a club management website.
Enhance the following description of %s, keeping its meaning:
%s
Return JSON only, matching exactly: %s`, subject, existingContent, contentSchema)
}
