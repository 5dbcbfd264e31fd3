package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/contactbook-backend/internal/apierr"
	"github.com/yungbote/contactbook-backend/internal/types"
)

func issuesOf(t *testing.T, err error) []apierr.FieldIssue {
	t.Helper()
	require.Error(t, err)
	ae := apierr.From(err)
	require.NotNil(t, ae)
	return ae.Issues
}

func TestRegisterUser(t *testing.T) {
	require.NoError(t, RegisterUser(&types.RegisterUserRequest{
		Username: "alice", Password: "secret", Name: "Alice",
	}))

	got := issuesOf(t, RegisterUser(&types.RegisterUserRequest{}))
	assert.Len(t, got, 3)
	assert.Equal(t, "username", got[0].Field)
	assert.Equal(t, "username is required", got[0].Message)

	long := strings.Repeat("x", 101)
	got = issuesOf(t, RegisterUser(&types.RegisterUserRequest{Username: long, Password: "p", Name: "n"}))
	require.Len(t, got, 1)
	assert.Equal(t, "username", got[0].Field)
}

func TestBoundsCountRunes(t *testing.T) {
	// 100 multibyte runes stay within a 100-character bound.
	name := strings.Repeat("é", 100)
	require.NoError(t, RegisterUser(&types.RegisterUserRequest{Username: "alice", Password: "secret", Name: name}))
	require.Error(t, RegisterUser(&types.RegisterUserRequest{Username: "alice", Password: "secret", Name: name + "é"}))
}

func TestCreateContact(t *testing.T) {
	require.NoError(t, CreateContact(&types.CreateContactRequest{FirstName: "John"}))
	require.NoError(t, CreateContact(&types.CreateContactRequest{
		FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "0812345",
	}))

	got := issuesOf(t, CreateContact(&types.CreateContactRequest{}))
	require.Len(t, got, 1)
	assert.Equal(t, "first_name", got[0].Field)

	got = issuesOf(t, CreateContact(&types.CreateContactRequest{FirstName: "John", Email: "not-an-email"}))
	require.Len(t, got, 1)
	assert.Equal(t, "email", got[0].Field)

	got = issuesOf(t, CreateContact(&types.CreateContactRequest{FirstName: "John", Phone: strings.Repeat("1", 21)}))
	require.Len(t, got, 1)
	assert.Equal(t, "phone", got[0].Field)
}

func TestUpdateContactRejectsBlankFirstName(t *testing.T) {
	require.NoError(t, UpdateContact(&types.UpdateContactRequest{ID: 1, FirstName: "John"}))

	got := issuesOf(t, UpdateContact(&types.UpdateContactRequest{ID: 1, FirstName: "   "}))
	require.Len(t, got, 1)
	assert.Equal(t, "First name cannot be empty", got[0].Message)
}

func TestSearchContactPaging(t *testing.T) {
	require.NoError(t, SearchContact(&types.SearchContactRequest{Page: 1, Size: 1}))
	require.NoError(t, SearchContact(&types.SearchContactRequest{Page: 1, Size: MaxPageSize}))

	assert.Error(t, SearchContact(&types.SearchContactRequest{Page: 0, Size: 10}))
	assert.Error(t, SearchContact(&types.SearchContactRequest{Page: -1, Size: 10}))
	assert.Error(t, SearchContact(&types.SearchContactRequest{Page: 1, Size: 0}))
	assert.Error(t, SearchContact(&types.SearchContactRequest{Page: 1, Size: MaxPageSize + 1}))
}

func TestContactID(t *testing.T) {
	require.NoError(t, ContactID(1))
	assert.Error(t, ContactID(0))
	assert.Error(t, ContactID(-5))
}

func TestCreateAddress(t *testing.T) {
	require.NoError(t, CreateAddress(&types.CreateAddressRequest{
		ContactID: 1, Country: "Indonesia", PostalCode: "12190",
	}))

	got := issuesOf(t, CreateAddress(&types.CreateAddressRequest{ContactID: 1}))
	assert.Len(t, got, 2)

	got = issuesOf(t, CreateAddress(&types.CreateAddressRequest{
		ContactID: 1, Country: "Indonesia", PostalCode: strings.Repeat("1", 11),
	}))
	require.Len(t, got, 1)
	assert.Equal(t, "postal_code", got[0].Field)
}

func TestToken(t *testing.T) {
	require.NoError(t, Token("some-opaque-token"))
	assert.Error(t, Token(""))
}
