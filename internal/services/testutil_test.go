package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/contactbook-backend/internal/logger"
	"github.com/yungbote/contactbook-backend/internal/repos"
	"github.com/yungbote/contactbook-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// One shared in-memory database per test so transactions see the same
	// store across pooled connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&types.User{}, &types.Contact{}, &types.Address{}))
	return gormDB
}

func newTestLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type testEnv struct {
	db       *gorm.DB
	users    UserService
	contacts ContactService
	addrs    AddressService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gormDB := newTestDB(t)
	log := newTestLogger()
	userRepo := repos.NewUserRepo(gormDB, log)
	contactRepo := repos.NewContactRepo(gormDB, log)
	addressRepo := repos.NewAddressRepo(gormDB, log)
	contacts := NewContactService(gormDB, log, contactRepo, addressRepo)
	return &testEnv{
		db:       gormDB,
		users:    NewUserService(gormDB, log, userRepo),
		contacts: contacts,
		addrs:    NewAddressService(gormDB, log, addressRepo, contacts),
	}
}

func (te *testEnv) register(t *testing.T, username string) *types.User {
	t.Helper()
	_, err := te.users.Register(context.Background(), &types.RegisterUserRequest{
		Username: username,
		Password: "secret123",
		Name:     "Test " + username,
	})
	require.NoError(t, err)
	var user types.User
	require.NoError(t, te.db.Where("username = ?", username).First(&user).Error)
	return &user
}

func (te *testEnv) createContact(t *testing.T, user *types.User, firstName string) *types.ContactResponse {
	t.Helper()
	resp, err := te.contacts.Create(context.Background(), user, &types.CreateContactRequest{
		FirstName: firstName,
		LastName:  "Tester",
		Email:     firstName + "@example.com",
		Phone:     "0812345678",
	})
	require.NoError(t, err)
	return resp
}
