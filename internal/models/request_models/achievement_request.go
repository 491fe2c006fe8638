package request_models

type CreateAchievementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	PhotoURL    string `json:"photoUrl" binding:"omitempty,url"`
	Hint        string `json:"hint"`
}

type UpdateAchievementRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	PhotoURL    *string `json:"photoUrl" binding:"omitempty,url"`
	Hint        *string `json:"hint"`
}

func (r UpdateAchievementRequest) Updates() map[string]interface{} {
	partial := map[string]interface{}{}
	if r.Title != nil {
		partial["title"] = *r.Title
	}
	if r.Description != nil {
		partial["description"] = *r.Description
	}
	if r.Date != nil {
		partial["date"] = *r.Date
	}
	if r.PhotoURL != nil {
		partial["photoUrl"] = *r.PhotoURL
	}
	if r.Hint != nil {
		partial["hint"] = *r.Hint
	}
	return partial
}
