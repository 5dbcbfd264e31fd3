package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/contactbook-backend/internal/apierr"
	"github.com/yungbote/contactbook-backend/internal/types"
)

func TestContactCreateGetRoundtrip(t *testing.T) {
	te := newTestEnv(t)
	ctx := context.Background()
	user := te.register(t, "alice")

	created, err := te.contacts.Create(ctx, user, &types.CreateContactRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "08123",
	})
	require.NoError(t, err)
	require.Positive(t, created.ID)

	got, err := te.contacts.Get(ctx, user, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestContactCrossUserAccessIsNotFound(t *testing.T) {
	te := newTestEnv(t)
	ctx := context.Background()
	alice := te.register(t, "alice")
	bob := te.register(t, "bob")
	created := te.createContact(t, alice, "John")

	requireNotFound := func(err error) {
		t.Helper()
		require.Error(t, err)
		ae := apierr.From(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusNotFound, ae.Status)
	}

	_, err := te.contacts.Get(ctx, bob, created.ID)
	requireNotFound(err)

	_, err = te.contacts.Update(ctx, bob, &types.UpdateContactRequest{ID: created.ID, FirstName: "Hijack"})
	requireNotFound(err)

	requireNotFound(te.contacts.Delete(ctx, bob, created.ID))

	// Still intact for the owner.
	got, err := te.contacts.Get(ctx, alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
}

func TestContactUpdate(t *testing.T) {
	te := newTestEnv(t)
	ctx := context.Background()
	user := te.register(t, "alice")
	created := te.createContact(t, user, "John")

	updated, err := te.contacts.Update(ctx, user, &types.UpdateContactRequest{
		ID:        created.ID,
		FirstName: "Johnny",
		LastName:  "Updated",
		Email:     "johnny@example.com",
		Phone:     "999",
	})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", updated.FirstName)

	got, err := te.contacts.Get(ctx, user, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestContactUpdateValidation(t *testing.T) {
	te := newTestEnv(t)
	ctx := context.Background()
	user := te.register(t, "alice")
	created := te.createContact(t, user, "John")

	for name, req := range map[string]*types.UpdateContactRequest{
		"missing_first_name": {ID: created.ID},
		"blank_first_name":   {ID: created.ID, FirstName: "   "},
		"bad_email":          {ID: created.ID, FirstName: "John", Email: "not-an-email"},
		"bad_id":             {ID: 0, FirstName: "John"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := te.contacts.Update(ctx, user, req)
			require.Error(t, err)
			ae := apierr.From(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.Status)
			assert.NotEmpty(t, ae.Issues)
		})
	}
}

func TestContactDeleteCascadesAddresses(t *testing.T) {
	te := newTestEnv(t)
	ctx := context.Background()
	user := te.register(t, "alice")
	created := te.createContact(t, user, "John")

	_, err := te.addrs.Create(ctx, user, &types.CreateAddressRequest{
		ContactID:  created.ID,
		Country:    "Indonesia",
		PostalCode: "12345",
	})
	require.NoError(t, err)

	require.NoError(t, te.contacts.Delete(ctx, user, created.ID))

	var addressCount int64
	require.NoError(t, te.db.Model(&types.Address{}).Where("contact_id = ?", created.ID).Count(&addressCount).Error)
	assert.Zero(t, addressCount)

	_, err = te.contacts.Get(ctx, user, created.ID)
	require.Error(t, err)
}

func TestContactSearchPagination(t *testing.T) {
	te := newTestEnv(t)
	ctx := context.Background()
	user := te.register(t, "alice")

	for i := 0; i < 25; i++ {
		_, err := te.contacts.Create(ctx, user, &types.CreateContactRequest{
			FirstName: fmt.Sprintf("Contact%02d", i),
		})
		require.NoError(t, err)
	}

	for page, wantLen := range map[int]int{1: 10, 2: 10, 3: 5} {
		result, err := te.contacts.Search(ctx, user, &types.SearchContactRequest{Page: page, Size: 10})
		require.NoError(t, err)
		assert.Len(t, result.Data, wantLen, "page %d", page)
		assert.Equal(t, page, result.Paging.CurrentPage)
		assert.Equal(t, 3, result.Paging.TotalPage)
		assert.Equal(t, 10, result.Paging.Size)
	}
}

func TestContactSearchEmptyResultHasZeroPages(t *testing.T) {
	te := newTestEnv(t)
	ctx := context.Background()
	user := te.register(t, "alice")
	te.createContact(t, user, "John")

	result, err := te.contacts.Search(ctx, user, &types.SearchContactRequest{Name: "nomatch", Page: 7, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Equal(t, 0, result.Paging.TotalPage)
	assert.Equal(t, 7, result.Paging.CurrentPage)
}

func TestContactSearchFilters(t *testing.T) {
	te := newTestEnv(t)
	ctx := context.Background()
	user := te.register(t, "alice")
	other := te.register(t, "bob")

	mk := func(owner *types.User, first, last, email, phone string) {
		_, err := te.contacts.Create(ctx, owner, &types.CreateContactRequest{
			FirstName: first, LastName: last, Email: email, Phone: phone,
		})
		require.NoError(t, err)
	}
	mk(user, "John", "Smith", "john@example.com", "0811")
	mk(user, "Jane", "Johnson", "jane@mail.com", "0822")
	mk(user, "Bob", "Stone", "bob@example.com", "0833")
	mk(other, "John", "Smith", "john@example.com", "0811")

	// Name matches first OR last name as a substring.
	result, err := te.contacts.Search(ctx, user, &types.SearchContactRequest{Name: "John", Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)

	// Filters are conjunctive.
	result, err = te.contacts.Search(ctx, user, &types.SearchContactRequest{Name: "John", Email: "example", Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "John", result.Data[0].FirstName)

	result, err = te.contacts.Search(ctx, user, &types.SearchContactRequest{Phone: "083", Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Bob", result.Data[0].FirstName)

	// No filters returns only the requesting user's rows.
	result, err = te.contacts.Search(ctx, user, &types.SearchContactRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, result.Data, 3)
}

func TestContactSearchValidation(t *testing.T) {
	te := newTestEnv(t)
	ctx := context.Background()
	user := te.register(t, "alice")

	for name, req := range map[string]*types.SearchContactRequest{
		"zero_page":     {Page: 0, Size: 10},
		"zero_size":     {Page: 1, Size: 0},
		"oversize_page": {Page: 1, Size: 51},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := te.contacts.Search(ctx, user, req)
			require.Error(t, err)
			ae := apierr.From(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.Status)
		})
	}
}
