package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yungbote/contactbook-backend/internal/apierr"
	"github.com/yungbote/contactbook-backend/internal/logger"
	"github.com/yungbote/contactbook-backend/internal/requestdata"
	"github.com/yungbote/contactbook-backend/internal/types"
)

type fakeUserService struct {
	token string
	user  *types.User
}

func (f *fakeUserService) GetByToken(_ context.Context, token string) (*types.User, error) {
	if token != "" && token == f.token {
		return f.user, nil
	}
	return nil, apierr.Unauthorized()
}

func (f *fakeUserService) Register(context.Context, *types.RegisterUserRequest) (*types.UserResponse, error) {
	return nil, nil
}
func (f *fakeUserService) Login(context.Context, *types.LoginUserRequest) (*types.UserResponse, error) {
	return nil, nil
}
func (f *fakeUserService) Update(context.Context, *types.User, *types.UpdateUserRequest) (*types.UserResponse, error) {
	return nil, nil
}
func (f *fakeUserService) Logout(context.Context, *types.User) error { return nil }

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	fake := &fakeUserService{
		token: "valid-token",
		user:  &types.User{Username: "alice", Name: "Alice"},
	}
	am := NewAuthMiddleware(log, fake)

	router := gin.New()
	router.Use(AttachRequestContext())
	guarded := router.Group("/")
	guarded.Use(am.RequireAuth())
	guarded.GET("/whoami", func(c *gin.Context) {
		user := requestdata.GetUser(c.Request.Context())
		require.NotNil(t, user)
		c.JSON(http.StatusOK, gin.H{"data": user.Username})
	})
	return router
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	router := newAuthRouter(t)

	for name, token := range map[string]string{
		"missing": "",
		"unknown": "not-a-session",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if token != "" {
				req.Header.Set("Authorization", token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"errors":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestRequireAuthResolvesUser(t *testing.T) {
	router := newAuthRouter(t)

	// The token is the raw header value; no Bearer prefix.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"alice"}`, rec.Body.String())
}
