package validation

import (
	"strings"

	"github.com/yungbote/contactbook-backend/internal/types"
)

func CreateContact(req *types.CreateContactRequest) error {
	var is issues
	is.required("first_name", req.FirstName, 100)
	is.optional("last_name", req.LastName, 100)
	is.email("email", req.Email, 100)
	is.optional("phone", req.Phone, 20)
	return is.err()
}

func ContactID(id int64) error {
	var is issues
	is.positiveID("id", id)
	return is.err()
}

func UpdateContact(req *types.UpdateContactRequest) error {
	var is issues
	is.positiveID("id", req.ID)
	is.required("first_name", req.FirstName, 100)
	if req.FirstName != "" && strings.TrimSpace(req.FirstName) == "" {
		is.add("first_name", "First name cannot be empty")
	}
	is.optional("last_name", req.LastName, 100)
	is.email("email", req.Email, 100)
	is.optional("phone", req.Phone, 20)
	return is.err()
}

func SearchContact(req *types.SearchContactRequest) error {
	var is issues
	is.optional("phone", req.Phone, 20)
	if req.Page < 1 {
		is.add("page", "page must be a positive number")
	}
	if req.Size < 1 {
		is.add("size", "size must be a positive number")
	}
	if req.Size > MaxPageSize {
		is.add("size", "size must be at most 50")
	}
	return is.err()
}
