package v1

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userEmail"
)

func (h *Handler) userIdentityMiddleware(c *gin.Context) {
	email, err := h.parseAuthHeader(c)
	if err != nil {
		h.logger.Debug("parse auth header failed", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	c.Set(userCtx, email)
}

func (h *Handler) parseAuthHeader(c *gin.Context) (string, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return "", errors.New("empty auth header")
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "Bearer") {
		return "", errors.New("invalid auth header")
	}

	if len(headerParts[1]) == 0 {
		return "", errors.New("token is empty")
	}

	return h.services.Auth.ParseAccessToken(headerParts[1])
}

func getUserEmail(c *gin.Context) (string, error) {
	email := c.GetString(userCtx)
	if email == "" {
		return "", errors.New("user email not found")
	}

	return email, nil
}
