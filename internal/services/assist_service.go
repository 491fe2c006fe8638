package services

import (
	"context"
	"strings"

	"clubcentral/internal/models/request_models"
	"clubcentral/internal/models/response_models"
	"clubcentral/pkg/utils"
)

type AssistServiceInterface interface {
	GenerateEventContent(ctx context.Context, req request_models.EventAssistRequest) (*response_models.TitleDescription, error)
	GenerateNotificationContent(ctx context.Context, req request_models.NotificationAssistRequest) (*response_models.TitleDescription, error)
	GenerateDescription(ctx context.Context, req request_models.DescriptionAssistRequest) (*response_models.GeneratedContent, error)
}

type AssistService struct {
	client utils.TextAssistClient
}

func NewAssistService(client utils.TextAssistClient) AssistServiceInterface {
	return &AssistService{client: client}
}

func (s *AssistService) GenerateEventContent(ctx context.Context, req request_models.EventAssistRequest) (*response_models.TitleDescription, error) {
	prompt := BuildTitleDescriptionPrompt("event", req.Topic, req.ExistingTitle, req.ExistingDescription)

	var out response_models.TitleDescription
	if err := s.client.GenerateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Title) == "" || strings.TrimSpace(out.Description) == "" {
		return nil, utils.ErrModelNoContent
	}
	return &out, nil
}

func (s *AssistService) GenerateNotificationContent(ctx context.Context, req request_models.NotificationAssistRequest) (*response_models.TitleDescription, error) {
	prompt := BuildTitleDescriptionPrompt("notification", req.Topic, req.ExistingTitle, req.ExistingDescription)

	var out response_models.TitleDescription
	if err := s.client.GenerateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Title) == "" || strings.TrimSpace(out.Description) == "" {
		return nil, utils.ErrModelNoContent
	}
	return &out, nil
}

func (s *AssistService) GenerateDescription(ctx context.Context, req request_models.DescriptionAssistRequest) (*response_models.GeneratedContent, error) {
	prompt := BuildContentPrompt(req.Subject, req.ExistingContent)

	var out response_models.GeneratedContent
	if err := s.client.GenerateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Content) == "" {
		return nil, utils.ErrModelNoContent
	}
	return &out, nil
}
