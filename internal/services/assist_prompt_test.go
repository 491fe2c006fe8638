package services_test

import (
	"strings"
	"testing"

	"clubcentral/internal/services"
)

func TestBuildTitleDescriptionPrompt(t *testing.T) {
	tests := []struct {
		name                string
		topic               string
		existingTitle       string
		existingDescription string
		wantContains        []string
		wantMissing         []string
	}{
		{
			name:         "no existing text generates fresh copy",
			topic:        "annual charity run",
			wantContains: []string{"Generate a new", "annual charity run"},
			wantMissing:  []string{"Enhance"},
		},
		{
			name:          "existing title switches to enhance",
			topic:         "annual charity run",
			existingTitle: "Run With Us",
			wantContains:  []string{"Enhance", "Run With Us"},
			wantMissing:   []string{"Generate a new"},
		},
		{
			name:                "existing description alone also enhances",
			topic:               "annual charity run",
			existingDescription: "Join the 5k.",
			wantContains:        []string{"Enhance", "Join the 5k."},
			wantMissing:         []string{"Generate a new"},
		},
		{
			name:          "whitespace only counts as empty",
			topic:         "annual charity run",
			existingTitle: "   ",
			wantContains:  []string{"Generate a new"},
			wantMissing:   []string{"Enhance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.BuildTitleDescriptionPrompt("event", tt.topic, tt.existingTitle, tt.existingDescription)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("prompt missing %q:\n%s", want, got)
				}
			}
			for _, missing := range tt.wantMissing {
				if strings.Contains(got, missing) {
					t.Errorf("prompt should not contain %q:\n%s", missing, got)
				}
			}
		})
	}
}

func TestBuildTitleDescriptionPrompt_Kind(t *testing.T) {
	got := services.BuildTitleDescriptionPrompt("notification", "library closure", "", "")
	if !strings.Contains(got, "notification") {
		t.Errorf("prompt missing the kind:\n%s", got)
	}
}

func TestBuildContentPrompt(t *testing.T) {
	fresh := services.BuildContentPrompt("a trophy photo", "")
	if !strings.Contains(fresh, "Generate a new") || !strings.Contains(fresh, "a trophy photo") {
		t.Errorf("fresh prompt wrong:\n%s", fresh)
	}

	enhance := services.BuildContentPrompt("a trophy photo", "Our team won gold.")
	if !strings.Contains(enhance, "Enhance") || !strings.Contains(enhance, "Our team won gold.") {
		t.Errorf("enhance prompt wrong:\n%s", enhance)
	}
	if strings.Contains(enhance, "Generate a new") {
		t.Errorf("enhance prompt should not offer to generate:\n%s", enhance)
	}
}
