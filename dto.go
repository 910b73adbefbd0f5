package nina

import "time"

// UserCreation is the inbound shape for registering a new account.
type UserCreation struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UserUpdation is the inbound shape for a partial update; absent fields keep
// the stored value.
type UserUpdation struct {
	Name     Optional[string] `json:"name"`
	Email    Optional[string] `json:"email"`
	Password Optional[string] `json:"password"`
}

// UserLogin is the inbound shape for credential verification.
type UserLogin struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UserResponse is the external projection of a user; it never carries the
// password hash.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthenticationResponse carries a freshly issued session token.
type AuthenticationResponse struct {
	Token      string    `json:"token"`
	Email      string    `json:"email"`
	Expiration time.Time `json:"expiration"`
}

// NewUserResponse projects an entity into its response view.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// NewUserResponsePage projects a page of entities, preserving order and
// pagination metadata.
func NewUserResponsePage(page *PagedList[*User]) *PagedList[UserResponse] {
	views := make([]UserResponse, 0, len(page.Items))
	for _, u := range page.Items {
		views = append(views, NewUserResponse(u))
	}

	return NewPagedList(views, page.Page, page.PageSize, page.TotalCount)
}
