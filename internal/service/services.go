// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

// Services aggregates every service handed to the transport layer.
type Services struct {
	UserService     UserService
	TodoService     TodoService
	IdentityService IdentityService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		UserService:     NewUserService(storages.UserRepository, validator, logger),
		TodoService:     NewTodoService(storages.TodoRepository, validator, logger),
		IdentityService: NewHeaderIdentityService(storages.UserRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
