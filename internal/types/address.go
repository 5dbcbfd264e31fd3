package types

import (
	"time"
)

// Address belongs to exactly one contact and is only reachable through it.
type Address struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ContactID  int64     `gorm:"index;not null;column:contact_id" json:"contact_id"`
	Contact    *Contact  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ContactID;references:ID" json:"-"`
	Street     string    `gorm:"column:street;size:255" json:"street"`
	City       string    `gorm:"column:city;size:100" json:"city"`
	Province   string    `gorm:"column:province;size:100" json:"province"`
	Country    string    `gorm:"not null;column:country;size:100" json:"country"`
	PostalCode string    `gorm:"not null;column:postal_code;size:10" json:"postal_code"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}

type CreateAddressRequest struct {
	ContactID  int64  `json:"-"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type GetAddressRequest struct {
	ContactID int64 `json:"-"`
	ID        int64 `json:"-"`
}

type UpdateAddressRequest struct {
	ContactID  int64  `json:"-"`
	ID         int64  `json:"-"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

func ToAddressResponse(address *Address) *AddressResponse {
	return &AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}
