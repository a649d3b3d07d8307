package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/user-service/internal/auth"
	"github.com/spec-kit/user-service/internal/config"
	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/events"
	"github.com/spec-kit/user-service/internal/repository"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// RegisterInput carries account-creation fields. The password is consumed
// once and never stored.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	NationalID string
	BirthDate  *string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	throttle   *LoginThrottle
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Throttle   *LoginThrottle
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
		throttle:   deps.Throttle,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Register creates a new account after checking username, email and national
// id uniqueness. The three existence checks are sequential and not
// transactional with the insert; the users table carries unique constraints
// as the final arbiter, so a lost race surfaces as a store error.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	if err := s.checkAvailable(ctx, "username", func() (*domain.User, error) {
		return s.users.GetByUsername(ctx, input.Username)
	}); err != nil {
		return nil, "", time.Time{}, err
	}
	if err := s.checkAvailable(ctx, "email", func() (*domain.User, error) {
		return s.users.GetByEmail(ctx, input.Email)
	}); err != nil {
		return nil, "", time.Time{}, err
	}
	if err := s.checkAvailable(ctx, "national_id", func() (*domain.User, error) {
		return s.users.GetByNationalID(ctx, input.NationalID)
	}); err != nil {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		NationalID:   input.NationalID,
		BirthDate:    input.BirthDate,
		PasswordHash: hash,
		Status:       domain.UserStatusActive,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.NewStoreError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.Username, user.ID)
	if err != nil {
		// The account stays created with no issued token; no compensation.
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.NewEvent(events.EventTypeUserRegistered, user.ID, user.Username))
	return user, token, exp, nil
}

// Login authenticates by username and password. Unknown usernames and wrong
// passwords produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	if !s.throttle.Allow(ctx, username) {
		return nil, "", time.Time{}, apperrors.NewDomainError(
			"TOO_MANY_ATTEMPTS", "too many failed login attempts", http.StatusTooManyRequests, nil)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.throttle.RecordFailure(ctx, username)
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, apperrors.NewStoreError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.throttle.RecordFailure(ctx, username)
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	// Best effort: a failed timestamp update must not fail the login.
	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn("failed to update last_login", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.Username, user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.throttle.Reset(ctx, username)
	s.publish(ctx, events.NewEvent(events.EventTypeUserLoggedIn, user.ID, user.Username))
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) checkAvailable(ctx context.Context, field string, lookup func() (*domain.User, error)) error {
	if _, err := lookup(); err == nil {
		return apperrors.NewDuplicateField(field)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewStoreError(err)
	}
	return nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
