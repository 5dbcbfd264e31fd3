package types

import (
	"time"
)

type Contact struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username  string    `gorm:"index;not null;column:username;size:100" json:"username"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:Username;references:Username" json:"-"`
	FirstName string    `gorm:"not null;column:first_name;size:100" json:"first_name"`
	LastName  string    `gorm:"column:last_name;size:100" json:"last_name"`
	Email     string    `gorm:"column:email;size:100" json:"email"`
	Phone     string    `gorm:"column:phone;size:20" json:"phone"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

type CreateContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type UpdateContactRequest struct {
	ID        int64  `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// SearchContactRequest filters are conjunctive; Name matches either first or
// last name as a substring.
type SearchContactRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
}

type ContactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func ToContactResponse(contact *Contact) *ContactResponse {
	return &ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

// Paging reports offset pagination metadata. TotalPage is 0 for an empty
// result set, not 1.
type Paging struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
	Size        int `json:"size"`
}

type ContactPage struct {
	Data   []*ContactResponse `json:"data"`
	Paging Paging             `json:"paging"`
}
