package apiHttp

import (
	"net/http"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/genaicorelab/iam-backend/docs"
	"github.com/genaicorelab/iam-backend/pkg/limiter"
	"github.com/genaicorelab/iam-backend/pkg/validator"

	internalV1 "github.com/genaicorelab/iam-backend/internal/api/http/internal/v1"
	"github.com/genaicorelab/iam-backend/internal/config"
	"github.com/genaicorelab/iam-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Services
	config   *config.Config
	logger   *zap.Logger
}

func NewHandlers(
	services *service.Services,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		services: services,
		config:   cfg,
		logger:   logger,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// client ip feeds the rate limiter, so forwarding headers are only
	// honoured from configured proxies
	if err := router.SetTrustedProxies(trustedProxies(cfg.HttpServer.TrustedProxies)); err != nil {
		h.logger.Error("set trusted proxies failed", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}

	if err := validator.RegisterGinValidator(); err != nil {
		h.logger.Error("register gin validator failed", zap.Error(err))
	}

	router.Use(
		requestIDMiddleware,
		ginzap.GinzapWithConfig(h.logger, &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			Context: func(c *gin.Context) []zapcore.Field {
				return []zapcore.Field{zap.String("request_id", c.GetString(requestIDKey))}
			},
		}),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.HttpServer.AllowedOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(h.logger, true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	router.GET("/", h.healthCheck)

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.logger)
	internalHandlersV1.Init(&router.RouterGroup)
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "iam backend is running"})
}

func trustedProxies(proxies []string) []string {
	var out []string
	for _, p := range proxies {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
