package validation

import (
	"github.com/yungbote/contactbook-backend/internal/types"
)

func RegisterUser(req *types.RegisterUserRequest) error {
	var is issues
	is.required("username", req.Username, 100)
	is.required("password", req.Password, 100)
	is.required("name", req.Name, 100)
	return is.err()
}

func LoginUser(req *types.LoginUserRequest) error {
	var is issues
	is.required("username", req.Username, 100)
	is.required("password", req.Password, 100)
	return is.err()
}

func UpdateUser(req *types.UpdateUserRequest) error {
	var is issues
	if req.Name != nil {
		is.required("name", *req.Name, 100)
	}
	if req.Password != nil {
		is.required("password", *req.Password, 100)
	}
	return is.err()
}

// Token performs the shape check only; the store lookup happens in the guard.
func Token(token string) error {
	var is issues
	if token == "" {
		is.add("token", "token is required")
	}
	return is.err()
}
