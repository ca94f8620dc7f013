// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

// headerIdentityService trusts the credential to be the caller's numeric
// user id and only checks that the user exists.
type headerIdentityService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewHeaderIdentityService constructs the header based [IdentityService].
func NewHeaderIdentityService(userRepository store.UserRepository, logger *logger.Logger) IdentityService {
	logger.Debug().Msg("creating header identity service")
	return &headerIdentityService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ResolveIdentity returns [ErrInvalidIdentity] for an empty, non-numeric or
// unknown id. Repository failures are returned wrapped as they are.
func (s *headerIdentityService) ResolveIdentity(ctx context.Context, credential string) (int64, error) {
	if credential == "" {
		return 0, fmt.Errorf("%w: credential is empty", ErrInvalidIdentity)
	}

	userID, ok := utils.ParseID(credential)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a user id", ErrInvalidIdentity, credential)
	}

	exists, err := s.userRepository.UserExists(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to look up user %d: %w", userID, err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: user %d does not exist", ErrInvalidIdentity, userID)
	}

	return userID, nil
}
