package domain

import "time"

// User represents a registered voter account. FirstPassword keeps the
// generated plaintext so an administrator can hand it to the new user
// once; it never crosses the service boundary in API responses.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	FirstPassword string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PublicUser is the representation of a user that leaves the admin
// service: credential fields stripped, first password included only on
// creation responses.
type PublicUser struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	FirstPassword string    `json:"first_password,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Public strips credential material from a user record.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Pagination describes the page window of a list response
type Pagination struct {
	Page     int `json:"page"`
	Size     int `json:"size"`
	Total    int `json:"total"`
	LastPage int `json:"last_page"`
}

// PaginatedUsers is a page of users with pagination metadata
type PaginatedUsers struct {
	List       []User     `json:"list"`
	Pagination Pagination `json:"pagination"`
}

// PaginatedPublicUsers is a page of users safe to return to callers
type PaginatedPublicUsers struct {
	List       []PublicUser `json:"list"`
	Pagination Pagination   `json:"pagination"`
}

// CreateUserRequest carries the admin user-provisioning payload
type CreateUserRequest struct {
	Username string `json:"username"`
}
