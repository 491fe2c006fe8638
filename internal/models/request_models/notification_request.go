package request_models

type CreateNotificationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Link        string `json:"link" binding:"omitempty,url"`
}

type UpdateNotificationRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link" binding:"omitempty,url"`
}

func (r UpdateNotificationRequest) Updates() map[string]interface{} {
	partial := map[string]interface{}{}
	if r.Title != nil {
		partial["title"] = *r.Title
	}
	if r.Description != nil {
		partial["description"] = *r.Description
	}
	if r.Link != nil {
		partial["link"] = *r.Link
	}
	return partial
}
