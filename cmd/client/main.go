// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/client"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("go-todo-client")
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 2
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Error().Err(err).Msg("error setting log level")
		return 2
	}

	if len(args) == 1 && args[0] == "build-info" {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return 0
	}

	todoAdapter, err := adapter.NewHTTPTodoKeeperAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating adapter")
		return 2
	}

	app, err := client.NewApp(todoAdapter, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating client app")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrWrongArguments) {
			return 2
		}
		return 1
	}
	return 0
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
