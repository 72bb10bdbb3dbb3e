package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelpal/internal/service"
)

const authUserIDKey = "auth_user_id"

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// optionalAuthMiddleware guarda el user id en el contexto cuando viene un
// Bearer token valido. Toda la API es publica: un token ausente o
// invalido no corta el request, solo deja los recursos sin dueño.
func optionalAuthMiddleware(jwtSvc *service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSvc == nil {
			c.Next()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.Next()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := jwtSvc.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(authUserIDKey, claims.UserID)
		c.Next()
	}
}

// authUserID devuelve el user id autenticado del contexto, o nil.
func authUserID(c *gin.Context) *string {
	val, ok := c.Get(authUserIDKey)
	if !ok {
		return nil
	}
	id, ok := val.(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}
