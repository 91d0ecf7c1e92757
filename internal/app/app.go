// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app is the application factory: it composes settings, services,
// middleware and routes into a runnable ECW API.
package app

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/MKhiriev/ecw-api/internal/handler"
	httpHandler "github.com/MKhiriev/ecw-api/internal/handler/http"
	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/internal/server"
	"github.com/MKhiriev/ecw-api/internal/service"
	"github.com/MKhiriev/ecw-api/models"
)

// App is a fully configured API. Its settings are fixed at construction.
type App struct {
	cfg      config.StructuredConfig
	handlers *handler.Handlers
	router   http.Handler

	logger *logger.Logger
}

// New builds the application from cfg: services first, then the router
// with tracing, logging and recovery middleware, the CORS policy, the
// optional rate limiter and finally the routes. cfg is copied; later changes to it have no effect.
func New(cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	services, err := service.NewServices(*cfg, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	router := handlers.HTTP.NewRouter()
	httpHandler.SetupMiddleware(router, cfg.CORS)
	handlers.HTTP.SetupRateLimit(router)
	if err = handlers.HTTP.RegisterRoutes(router); err != nil {
		return nil, fmt.Errorf("error registering routes: %w", err)
	}

	return &App{
		cfg:      *cfg,
		handlers: handlers,
		router:   router,
		logger:   logger,
	}, nil
}

// Handler returns the HTTP entry point of the application.
func (a *App) Handler() http.Handler {
	return a.router
}

// Run serves the application on the configured address until the process
// is signalled to stop.
func (a *App) Run() error {
	srv, err := server.NewServer(a.router, a.handlers.GRPC, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	a.logger.Info().
		Str("app", a.cfg.App.Name).
		Str("version", a.cfg.App.Version).
		Str("address", a.cfg.Server.Address()).
		Strs("allowed_origins", a.cfg.CORS.AllowedOrigins).
		Msg("starting application")

	return srv.RunServer()
}
