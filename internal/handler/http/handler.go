package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/service"
)

// Metrics is the part of *metrics.Metrics the transport uses.
type Metrics interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
	Handler() http.Handler
}

type Handler struct {
	services *service.Services

	// metrics is optional; without it /metrics is not served.
	metrics Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
