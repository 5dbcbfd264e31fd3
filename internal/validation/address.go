package validation

import (
	"github.com/yungbote/contactbook-backend/internal/types"
)

func CreateAddress(req *types.CreateAddressRequest) error {
	var is issues
	is.positiveID("contact_id", req.ContactID)
	is.optional("street", req.Street, 255)
	is.optional("city", req.City, 100)
	is.optional("province", req.Province, 100)
	is.required("country", req.Country, 100)
	is.required("postal_code", req.PostalCode, 10)
	return is.err()
}

func GetAddress(req *types.GetAddressRequest) error {
	var is issues
	is.positiveID("contact_id", req.ContactID)
	is.positiveID("id", req.ID)
	return is.err()
}

func UpdateAddress(req *types.UpdateAddressRequest) error {
	var is issues
	is.positiveID("contact_id", req.ContactID)
	is.positiveID("id", req.ID)
	is.optional("street", req.Street, 255)
	is.optional("city", req.City, 100)
	is.optional("province", req.Province, 100)
	is.required("country", req.Country, 100)
	is.required("postal_code", req.PostalCode, 10)
	return is.err()
}
