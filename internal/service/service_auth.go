// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/billable-hours/internal/config"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/store"
	"github.com/MKhiriev/billable-hours/internal/utils"
	"github.com/MKhiriev/billable-hours/internal/validators"
	"github.com/MKhiriev/billable-hours/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification and the session token
// lifecycle, storing passwords as bcrypt hashes.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// passwordCost is the bcrypt cost used for new hashes.
	passwordCost int

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected during parsing.
	sessionIssuer string

	// sessionDuration controls how long a session stays valid.
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		validator:       validators.NewCredentialsValidator(),
		passwordCost:    cfg.PasswordCost,
		sessionSignKey:  cfg.SessionSignKey,
		sessionIssuer:   cfg.SessionIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// Signup validates the credentials, hashes the password and stores a new
// non-admin user. The store promotes the first user ever created to admin.
//
// Returns the persisted user or:
//   - an error wrapping ErrInvalidDataProvided and the validation errors.
//   - store.ErrUsernameTaken if the username is already registered.
func (a *authService) Signup(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return a.register(ctx, credentials, false)
}

// CreateAdmin is Signup for the admin CLI: the account is an admin and it
// can only be created while no users exist.
func (a *authService) CreateAdmin(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	count, err := a.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateAdmin").Msg("counting users failed")
		return models.User{}, fmt.Errorf("counting users failed: %w", err)
	}
	if count > 0 {
		return models.User{}, ErrUsersAlreadyExist
	}

	return a.register(ctx, credentials, true)
}

func (a *authService) register(ctx context.Context, credentials models.Credentials, isAdmin bool) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("username", credentials.Username).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(credentials.Password, a.passwordCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Bool("is_admin", user.IsAdmin).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user or:
//   - ErrInvalidDataProvided if the username or password is empty.
//   - ErrWrongCredentials if the user does not exist or the password does
//     not match. Both cases look the same to the caller.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(credentials.Username)
	if username == "" || credentials.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", username).Msg("login with unknown username")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := utils.CheckPassword(user.PasswordHash, credentials.Password); err != nil {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}

// ChangePassword replaces the password of change.UserID after verifying the
// current one.
func (a *authService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, change.UserID)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("user_id", change.UserID).Msg("user search failed")
		return fmt.Errorf("user search failed: %w", err)
	}

	if err := utils.CheckPassword(user.PasswordHash, change.CurrentPassword); err != nil {
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(change.NewPassword, a.passwordCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("user_id", user.ID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// CreateSessionToken issues a signed session token for user, carrying the
// configured issuer and expiring after the configured duration.
func (a *authService) CreateSessionToken(ctx context.Context, user models.User) (models.SessionToken, error) {
	token, err := utils.GenerateSessionToken(a.sessionIssuer, user, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateSessionToken").Msg("token generation failed")
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseSessionToken validates a raw session token and reloads its user.
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// and a deleted user are normalised to ErrSessionIsExpiredOrInvalid.
// Username and admin flag come from the store, not from the token claims.
func (a *authService) ParseSessionToken(ctx context.Context, tokenString string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := utils.ParseSessionToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Int64("user_id", session.UserID).Msg("session names a missing user")
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ParseSessionToken").Int64("user_id", session.UserID).Msg("session user lookup failed")
		return models.Session{}, fmt.Errorf("session user lookup failed: %w", err)
	}

	if user.IsAdmin != session.IsAdmin {
		log.Debug().Int64("user_id", user.ID).Bool("is_admin", user.IsAdmin).Msg("admin flag changed since login")
	}
	session.Username = user.Username
	session.IsAdmin = user.IsAdmin

	return session, nil
}
