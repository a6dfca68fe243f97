package v1

import (
	"github.com/vibe-gaming/verify/internal/config"
	"github.com/vibe-gaming/verify/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(services *service.Services, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initVerificationRoutes(api)
}
