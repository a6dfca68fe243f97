package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vibe-gaming/verify/pkg/logger"
	"go.uber.org/zap"
)

const authorizationHeader = "Authorization"

// adminIdentityMiddleware admits only requests bearing the configured admin token.
// With no token configured every request is rejected.
func (h *Handler) adminIdentityMiddleware(c *gin.Context) {
	expected := h.config.Auth.AdminToken
	if expected == "" {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedMessage)
		return
	}

	token, ok := parseBearer(c.GetHeader(authorizationHeader))
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		logger.Warn("admin request rejected", zap.String("ip", c.ClientIP()))
		errorResponse(c, http.StatusUnauthorized, UnauthorizedMessage)
		return
	}

	c.Next()
}

func parseBearer(header string) (string, bool) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" || headerParts[1] == "" {
		return "", false
	}

	return headerParts[1], true
}
