package request_models

type CreatePhotoRequest struct {
	URL           string `json:"url" binding:"required,url"`
	Description   string `json:"description"`
	Hint          string `json:"hint"`
	IsSliderPhoto bool   `json:"isSliderPhoto"`
}

type UpdatePhotoRequest struct {
	URL           *string `json:"url" binding:"omitempty,url"`
	Description   *string `json:"description"`
	Hint          *string `json:"hint"`
	IsSliderPhoto *bool   `json:"isSliderPhoto"`
}

// Updates returns only the fields present in the request, ready to be
// merged into the stored document.
func (r UpdatePhotoRequest) Updates() map[string]interface{} {
	partial := map[string]interface{}{}
	if r.URL != nil {
		partial["url"] = *r.URL
	}
	if r.Description != nil {
		partial["description"] = *r.Description
	}
	if r.Hint != nil {
		partial["hint"] = *r.Hint
	}
	if r.IsSliderPhoto != nil {
		partial["isSliderPhoto"] = *r.IsSliderPhoto
	}
	return partial
}
