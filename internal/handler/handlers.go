package handler

import (
	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/MKhiriev/ecw-api/internal/handler/grpc"
	"github.com/MKhiriev/ecw-api/internal/handler/http"
	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/internal/service"
)

// Handlers groups the transport handlers. GRPC is nil unless a gRPC port is
// configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, errNoServices
	}

	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
	if cfg.Server.GRPCAddress() != "" {
		handlers.GRPC = grpc.NewHandler(cfg.App.Name, logger)
	}

	return handlers, nil
}
