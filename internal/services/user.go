package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/contactbook-backend/internal/apierr"
	"github.com/yungbote/contactbook-backend/internal/logger"
	"github.com/yungbote/contactbook-backend/internal/normalization"
	"github.com/yungbote/contactbook-backend/internal/repos"
	"github.com/yungbote/contactbook-backend/internal/types"
	"github.com/yungbote/contactbook-backend/internal/validation"
)

type UserService interface {
	Register(ctx context.Context, req *types.RegisterUserRequest) (*types.UserResponse, error)
	Login(ctx context.Context, req *types.LoginUserRequest) (*types.UserResponse, error)
	GetByToken(ctx context.Context, token string) (*types.User, error)
	Update(ctx context.Context, user *types.User, req *types.UpdateUserRequest) (*types.UserResponse, error)
	Logout(ctx context.Context, user *types.User) error
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) Register(ctx context.Context, req *types.RegisterUserRequest) (*types.UserResponse, error) {
	req.Username = normalization.ParseInputString(req.Username)
	req.Name = normalization.ParseInputString(req.Name)
	if err := validation.RegisterUser(req); err != nil {
		return nil, err
	}

	// Work factor 10, matching the rest of the deployment.
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &types.User{
		Username: req.Username,
		Password: string(hashed),
		Name:     req.Name,
	}
	// Uniqueness check and insert share one transaction so two racing
	// registrations cannot both pass the check.
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, exErr := us.userRepo.UsernameExists(ctx, tx, req.Username)
		if exErr != nil {
			return fmt.Errorf("failed to check username: %w", exErr)
		}
		if exists {
			return apierr.Conflict("Username already exists")
		}
		_, cErr := us.userRepo.Create(ctx, tx, user)
		return cErr
	}); err != nil {
		return nil, err
	}
	return types.ToUserResponse(user), nil
}

func (us *userService) Login(ctx context.Context, req *types.LoginUserRequest) (*types.UserResponse, error) {
	req.Username = normalization.ParseInputString(req.Username)
	if err := validation.LoginUser(req); err != nil {
		return nil, err
	}

	user, err := us.userRepo.GetByUsername(ctx, nil, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	// Unknown username and wrong password return the identical error so the
	// endpoint cannot be used to enumerate accounts.
	if user == nil {
		return nil, apierr.Unauthorized()
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apierr.Unauthorized()
	}

	token := uuid.New().String()
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Overwrites any prior session: one active token per user.
		return us.userRepo.UpdateToken(ctx, tx, user.Username, &token)
	}); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	resp := types.ToUserResponse(user)
	resp.Token = token
	return resp, nil
}

func (us *userService) GetByToken(ctx context.Context, token string) (*types.User, error) {
	if err := validation.Token(token); err != nil {
		return nil, apierr.Unauthorized()
	}
	user, err := us.userRepo.GetByToken(ctx, nil, token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	if user == nil {
		return nil, apierr.Unauthorized()
	}
	return user, nil
}

// Update applies the name branch or the password branch, never both. When both
// fields arrive in one request the name wins; this mirrors the deployed
// behavior clients already rely on.
func (us *userService) Update(ctx context.Context, user *types.User, req *types.UpdateUserRequest) (*types.UserResponse, error) {
	if err := validation.UpdateUser(req); err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	} else if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return us.userRepo.UpdateProfile(ctx, tx, user.Username, user.Name, user.Password)
	}); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return types.ToUserResponse(user), nil
}

// Logout clears the stored token. Clearing an already-cleared token is a
// no-op, so the call is idempotent.
func (us *userService) Logout(ctx context.Context, user *types.User) error {
	if err := us.userRepo.UpdateToken(ctx, nil, user.Username, nil); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}
