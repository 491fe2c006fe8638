package request_models

// SignInRequest carries the profile the browser obtained from the
// identity provider. The server never sees credentials, only the
// provider's snapshot of who signed in.
type SignInRequest struct {
	UID         string `json:"uid" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl" binding:"omitempty,url"`
}
