package http

import (
	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/internal/service"
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
