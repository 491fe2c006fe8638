package request_models

type SubmitAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	PhotoURL string `json:"photoUrl" binding:"omitempty,url"`
	Reason   string `json:"reason" binding:"required"`
}

type UpdateAdminRequestStatus struct {
	Status string `json:"status" binding:"required"`
}
