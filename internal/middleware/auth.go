package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"laptopxplorer/internal/model"
	"laptopxplorer/pkg/response"
	"laptopxplorer/pkg/scope"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// Auth requires a valid bearer token and stores its payload in the request
// context. Missing or invalid tokens get 401.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := mw.scopeManager.Verify(token)
		if err != nil {
			mw.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetPayloadToContext(c.Request.Context(), payload))
		c.Next()
	}
}

// OptionalAuth stores the token payload when a valid token is present and
// lets anonymous requests through otherwise.
func (mw Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if payload, err := mw.scopeManager.Verify(token); err == nil {
				c.Request = c.Request.WithContext(scope.SetPayloadToContext(c.Request.Context(), payload))
			}
		}
		c.Next()
	}
}

// RequireRole must run after Auth. Callers without the role get 403.
func (mw Middleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := scope.GetPayloadFromContext(c.Request.Context())
		if !ok {
			response.Unauthorized(c)
			return
		}
		if payload.Role != role {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// GetScope returns the caller identity stored by Auth or OptionalAuth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, false
	}
	return model.NewScope(payload), true
}
