package grpc

import (
	"github.com/MKhiriev/ecw-api/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler. It serves the standard
// grpc.health.v1 service so orchestrators can probe the API without HTTP.
type Handler struct {
	health      *health.Server
	serviceName string

	logger *logger.Logger
}

// NewHandler returns a health handler that reports serviceName, and the
// overall server status "", as SERVING once registered.
func NewHandler(serviceName string, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health:      health.NewServer(),
		serviceName: serviceName,
		logger:      logger,
	}
}

// Register attaches the health service to server and marks it SERVING.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(h.serviceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every status to NOT_SERVING. Watchers are notified before
// the listener closes.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
