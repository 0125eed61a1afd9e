package v1

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	userIDCtxKey = "user_id"
	emailCtxKey  = "email"
)

const maxRequestBodySize = 16 << 10

func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	const authHeader = "Authorization"
	header := strings.TrimSpace(c.GetHeader(authHeader))

	scheme, token, _ := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if token == "" {
		h.logger.Error().Msg("access token is missing")
		abort(c, newUnauthorizedError(msgMissingToken))
		return
	}

	const bearerScheme = "Bearer"
	if !strings.EqualFold(scheme, bearerScheme) {
		h.logger.Error().
			Str("scheme", scheme).
			Msg("invalid authorization scheme")
		abort(c, newUnauthorizedError(msgInvalidToken))
		return
	}

	identity, err := h.auth.ParseToken(token)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to parse token")
		abort(c, newUnauthorizedError(msgInvalidToken))
		return
	}

	c.Set(userIDCtxKey, identity.UserID)
	c.Set(emailCtxKey, identity.Email)
	c.Next()
}

func (h *handlerImpl) HandleRequestLogging(c *gin.Context) {
	start := time.Now()
	c.Next()

	status := c.Writer.Status()
	var event *zerolog.Event
	switch {
	case status >= http.StatusInternalServerError:
		event = h.logger.Error()
	case status >= http.StatusBadRequest:
		event = h.logger.Warn()
	default:
		event = h.logger.Info()
	}

	event.
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Str("client_ip", c.ClientIP()).
		Msg("handled request")
}

func (h *handlerImpl) HandleBodyLimit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodySize)
	c.Next()
}

func (h *handlerImpl) HandleRecovery(c *gin.Context, recovered any) {
	h.logger.Error().
		Interface("panic", recovered).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Bytes("stack", debug.Stack()).
		Msg("recovered from panic")
	abort(c, newStatusTextError(http.StatusInternalServerError))
}

func (h *handlerImpl) HandleNoRoute(c *gin.Context) {
	abort(c, newNotFoundError(msgRouteNotFound))
}

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.String(http.StatusOK, "Server is ready")
}

func getStringFromContext(c *gin.Context, key string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		return "", false
	}
	str, ok := value.(string)
	return str, ok && str != ""
}
