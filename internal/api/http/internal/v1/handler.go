package v1

import (
	"github.com/genaicorelab/iam-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title IAM Backend API
// @version 1.0
// @description User registration and authentication API

// @BasePath /

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services *service.Services
	logger   *zap.Logger
}

func NewHandler(
	services *service.Services,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initUsersRoutes(api)
	h.initReferenceRoutes(api)
}
