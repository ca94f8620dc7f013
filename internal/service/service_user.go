// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// userService validates user forms and delegates persistence to the
// [store.UserRepository].
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a [UserService] around the given repository.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateUser stores the name untrimmed.
//
// Returns a validators sentinel for a blank or oversized name, or a wrapped
// storage error.
func (s *userService) CreateUser(ctx context.Context, form models.UserForm) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Str("func", "*userService.CreateUser").Msg("invalid user form")
		return err
	}

	if err := s.userRepository.CreateUser(ctx, models.User{Name: form.Name}); err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	return nil
}

// UpdateUser renames the user and returns the stored record.
// Returns [store.ErrUserNotFound] (wrapped) when the id is unknown.
func (s *userService) UpdateUser(ctx context.Context, userID int64, form models.UserForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Str("func", "*userService.UpdateUser").Int64("user_id", userID).Msg("invalid user form")
		return models.User{}, err
	}

	if err := s.userRepository.UpdateUserName(ctx, models.User{ID: userID, Name: form.Name}); err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("user_id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("user_id", userID).Msg("failed to re-read updated user")
		return models.User{}, fmt.Errorf("failed to re-read updated user: %w", err)
	}

	return user, nil
}

// GetUsers returns all users ordered by id together with the total count.
func (s *userService) GetUsers(ctx context.Context) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userService.GetUsers").Msg("failed to get users")
		return nil, 0, fmt.Errorf("failed to get users: %w", err)
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userService.GetUsers").Msg("failed to count users")
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return users, total, nil
}

// DeleteUser removes the user and its todos.
// Returns [store.ErrUserNotFound] (wrapped) when the id is unknown.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUserCascade(ctx, userID); err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Int64("user_id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
