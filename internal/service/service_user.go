// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/billable-hours/internal/config"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/store"
	"github.com/MKhiriev/billable-hours/internal/utils"
	"github.com/MKhiriev/billable-hours/internal/validators"
	"github.com/MKhiriev/billable-hours/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	passwordCost   int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		passwordCost:   cfg.PasswordCost,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

// ResetPassword sets a new password without knowing the old one.
func (s *userService) ResetPassword(ctx context.Context, userID int64, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.Credentials{Password: newPassword}, validators.FieldPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(newPassword, s.passwordCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdatePasswordHash(ctx, userID, hash); err != nil {
		log.Err(err).Str("func", "*userService.ResetPassword").Int64("user_id", userID).Msg("password reset failed")
		return fmt.Errorf("password reset failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("password reset")
	return nil
}

func (s *userService) ResetPasswordByUsername(ctx context.Context, username, newPassword string) error {
	user, err := s.userRepository.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return fmt.Errorf("user search by username failed: %w", err)
	}
	return s.ResetPassword(ctx, user.ID, newPassword)
}

// ToggleAdmin flips the admin flag of userID. The actor must still be an
// admin in the store, cannot change their own flag and cannot revoke the
// rights of the last admin (store.ErrLastAdmin).
func (s *userService) ToggleAdmin(ctx context.Context, actor models.Session, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if actor.UserID == userID {
		return models.User{}, ErrCannotChangeOwnRole
	}

	current, err := s.userRepository.FindUserByID(ctx, actor.UserID)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("actor search failed: %w", err)
	}
	if err != nil || !current.IsAdmin {
		log.Warn().Int64("actor_id", actor.UserID).Int64("user_id", userID).Msg("admin flag change refused")
		return models.User{}, ErrAdminRequired
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}

	user.IsAdmin = !user.IsAdmin
	if err := s.userRepository.SetAdmin(ctx, user.ID, user.IsAdmin); err != nil {
		if errors.Is(err, store.ErrLastAdmin) {
			return models.User{}, err
		}
		log.Err(err).Str("func", "*userService.ToggleAdmin").Int64("user_id", userID).Msg("admin flag update failed")
		return models.User{}, fmt.Errorf("admin flag update failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Int64("actor_id", actor.UserID).Bool("is_admin", user.IsAdmin).Msg("admin flag changed")
	return user, nil
}

// SetAdminByUsername grants or revokes admin rights from the command line,
// where there is no acting session. The last admin still cannot be demoted.
func (s *userService) SetAdminByUsername(ctx context.Context, username string, isAdmin bool) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := s.userRepository.SetAdmin(ctx, user.ID, isAdmin); err != nil {
		if !errors.Is(err, store.ErrLastAdmin) {
			log.Err(err).Str("func", "*userService.SetAdminByUsername").Int64("user_id", user.ID).Msg("admin flag update failed")
		}
		return models.User{}, fmt.Errorf("admin flag update failed: %w", err)
	}

	user.IsAdmin = isAdmin
	log.Info().Int64("user_id", user.ID).Bool("is_admin", isAdmin).Msg("admin flag set")
	return user, nil
}
