package request_models

type CreateMemberRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	PhotoURL   string `json:"photoUrl" binding:"omitempty,url"`
	JoinDate   string `json:"joinDate" binding:"required,datetime=2006-01-02"`
	DOB        string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Phone      string `json:"phone"`
	BloodGroup string `json:"bloodGroup"`
	IsAdmin    bool   `json:"isAdmin"`
}

type UpdateMemberRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	PhotoURL   *string `json:"photoUrl" binding:"omitempty,url"`
	JoinDate   *string `json:"joinDate" binding:"omitempty,datetime=2006-01-02"`
	DOB        *string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Phone      *string `json:"phone"`
	BloodGroup *string `json:"bloodGroup"`
	IsAdmin    *bool   `json:"isAdmin"`
}

func (r UpdateMemberRequest) Updates() map[string]interface{} {
	partial := map[string]interface{}{}
	if r.Name != nil {
		partial["name"] = *r.Name
	}
	if r.Email != nil {
		partial["email"] = *r.Email
	}
	if r.PhotoURL != nil {
		partial["photoUrl"] = *r.PhotoURL
	}
	if r.JoinDate != nil {
		partial["joinDate"] = *r.JoinDate
	}
	if r.DOB != nil {
		partial["dob"] = *r.DOB
	}
	if r.Phone != nil {
		partial["phone"] = *r.Phone
	}
	if r.BloodGroup != nil {
		partial["bloodGroup"] = *r.BloodGroup
	}
	if r.IsAdmin != nil {
		partial["isAdmin"] = *r.IsAdmin
	}
	return partial
}
