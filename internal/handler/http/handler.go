// Package http implements the HTTP transport layer of the server: the REST
// routes for campaign lifecycle, documents, donations and the JWT-gated
// admin surface, plus the middleware that wraps them. Requests are decoded
// and validated here before being forwarded to the service layer; sensitive
// plaintext only ever appears in admin responses.
package http

import (
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
