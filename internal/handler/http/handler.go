package http

import (
	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/internal/service"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services

	app      config.App
	jwksPath string
	limiter  *rate.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      cfg.App,
		jwksPath: cfg.WellKnown.JWKSPath(),
		limiter:  newLimiter(cfg.RateLimit),
		logger:   logger,
	}
}
