package response_models

const (
	RoleGuest  = "guest"
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// SessionSnapshot is the current-user view handed to the frontend:
// the provider profile plus the role resolved server-side.
type SessionSnapshot struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
	Role     string `json:"role"`
}

type SignInResponse struct {
	Token   string          `json:"token"`
	Session SessionSnapshot `json:"session"`
}
