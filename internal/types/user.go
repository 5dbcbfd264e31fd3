package types

import (
	"time"
)

// User is the tenant root. Username is the identity key; every contact row is
// scoped to it. Token holds the single active opaque session credential and is
// NULL while logged out.
type User struct {
	Username  string    `gorm:"primaryKey;column:username;size:100" json:"username"`
	Password  string    `gorm:"not null;column:password;size:100" json:"-"`
	Name      string    `gorm:"not null;column:name;size:100" json:"name"`
	Token     *string   `gorm:"uniqueIndex;column:token;size:100" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserResponse never carries the password hash. Token is present only on login.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

func ToUserResponse(user *User) *UserResponse {
	return &UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}
