package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/seenhub/seenhub-server/internal/auth"
	"github.com/seenhub/seenhub-server/internal/domain"
	domainerrors "github.com/seenhub/seenhub-server/internal/errors"
	"github.com/seenhub/seenhub-server/internal/id"
	"github.com/seenhub/seenhub-server/internal/store"
)

// AuthService handles registration, login and session token verification.
type AuthService struct {
	store        *store.Store
	tokenService *auth.TokenService
	logger       *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store *store.Store, tokenService *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:        store,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterRequest contains user registration data.
type RegisterRequest struct {
	LoginName   string `json:"loginName" validate:"required,min=2,max=64"`
	Password    string `json:"password" validate:"required,min=8,max=1024"`
	DisplayName string `json:"displayName" validate:"required,max=128"`
}

// LoginRequest contains user credentials.
type LoginRequest struct {
	LoginName string `json:"loginName" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginResponse contains the authenticated user and their session token.
type LoginResponse struct {
	User  domain.PublicUser `json:"user"`
	Token string            `json:"-"` // Delivered as a cookie, never in the body
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.PublicUser, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, fmt.Errorf("generate user ID: %w", err)
	}

	user := &domain.User{
		ID:           userID,
		LoginName:    req.LoginName,
		PasswordHash: passwordHash,
		DisplayName:  req.DisplayName,
		CreatedAt:    time.Now(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return nil, domainerrors.AlreadyExists("login name already in use")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("User registered", "user_id", user.ID, "login_name", user.LoginName)
	}

	public := user.Public()
	return &public, nil
}

// Login verifies credentials and issues a session token. An unknown login
// name is reported as not found; a wrong password as invalid credentials.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	user, err := s.store.GetUserByLogin(ctx, req.LoginName)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user.Deleted {
		return nil, domainerrors.NotFound("user not found")
	}

	valid, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return nil, domainerrors.InvalidCredentials("wrong password")
	}

	token, err := s.tokenService.GenerateSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("User logged in", "user_id", user.ID)
	}

	return &LoginResponse{
		User:  user.Public(),
		Token: token,
	}, nil
}

// VerifyToken validates a session token and returns the live user behind it.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenService.VerifySessionToken(token)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid or expired session").WithCause(err)
	}

	user, err := s.store.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.Unauthorized("unknown user")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user.Deleted {
		return nil, domainerrors.Unauthorized("account disabled")
	}
	return user, nil
}

// SessionDuration returns the configured session lifetime, used to set
// cookie expiry.
func (s *AuthService) SessionDuration() time.Duration {
	return s.tokenService.SessionDuration()
}

// DeleteUser soft-deletes a user account. Existing sessions die with the
// account since VerifyToken rejects deleted users.
func (s *AuthService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.store.SoftDeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return domainerrors.NotFound("user not found")
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
