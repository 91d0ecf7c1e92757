package service

import (
	"context"
	"fmt"
	"runtime"

	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/models"
)

const (
	statusHealthy = "healthy"
	docsPath      = "/docs"
	healthPath    = "/health"
)

type appInfoService struct {
	app    config.App
	server config.Server
	build  models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.App.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if cfg.App.Name == "" {
		return nil, ErrNameIsNotSpecified
	}

	return &appInfoService{
		app:    cfg.App,
		server: cfg.Server,
		build:  build,
		logger: logger,
	}, nil
}

func (s *appInfoService) Welcome(ctx context.Context) models.Welcome {
	return models.Welcome{
		Message: fmt.Sprintf("Welcome to %s", s.app.Name),
		Version: s.app.Version,
		Docs:    docsPath,
		Health:  healthPath,
	}
}

func (s *appInfoService) Health(ctx context.Context) models.Health {
	return models.Health{
		Status:  statusHealthy,
		Version: s.app.Version,
		Service: s.app.Name,
	}
}

func (s *appInfoService) SystemInfo(ctx context.Context) models.SystemInfo {
	return models.SystemInfo{
		AppName:      s.app.Name,
		AppVersion:   s.app.Version,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "-" + runtime.GOARCH,
		Host:         s.server.Host,
		Port:         s.server.Port,
		AppBuildInfo: s.build,
	}
}
