package http

import (
	"github.com/gatekit/gatekit/internal/logger"
	"github.com/gatekit/gatekit/internal/token"
	"github.com/gatekit/gatekit/models"
)

type Handler struct {
	codec *token.Codec[models.UserClaims, *models.UserClaims]

	logger *logger.Logger
}

func NewHandler(codec *token.Codec[models.UserClaims, *models.UserClaims], logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		codec:  codec,
		logger: logger,
	}
}
