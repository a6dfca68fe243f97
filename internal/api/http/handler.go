package apiHttp

import (
	_ "embed"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"

	"github.com/vibe-gaming/verify/pkg/logger"
	"github.com/vibe-gaming/verify/pkg/validator"

	internalV1 "github.com/vibe-gaming/verify/internal/api/http/internal/v1"
	"github.com/vibe-gaming/verify/internal/config"
	"github.com/vibe-gaming/verify/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var indexPage []byte

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   cfg,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		corsMiddleware(cfg.Wizard.AllowedOrigins),
	)
	router.Use(ginzap.CustomRecoveryWithZap(logger.Logger(), true, func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalV1.Response{
			Success: false,
			Message: internalV1.UnknownErrorMessage,
		})
	}))

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
	})

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.config)
	internalHandlersV1.Init(&router.RouterGroup)
}
