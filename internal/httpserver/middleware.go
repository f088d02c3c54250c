package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	sessionHeader = "X-Session-ID"

	ctxSessionID = "sessionId"
	ctxUserID    = "userId"
	ctxRole      = "role"
)

// sessionMiddleware requires the opaque client-generated session key that
// scopes a cart.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := strings.TrimSpace(c.GetHeader(sessionHeader))
		if sid == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + sessionHeader + " header"})
			return
		}
		c.Set(ctxSessionID, sid)
		c.Next()
	}
}

// authMiddleware validates the bearer token and stores its claims.
func authMiddleware(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := bearerClaims(c, svc)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// requireRole gates a group to one role. Must run after authMiddleware.
func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// bearerClaims parses the Authorization header if present. Handlers that
// allow anonymous access call this directly instead of going through
// authMiddleware.
func bearerClaims(c *gin.Context, svc authService) (*claimsResult, error) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return nil, errNoToken
	}
	claims, err := svc.ParseToken(strings.TrimPrefix(h, "Bearer "))
	if err != nil {
		return nil, err
	}
	return &claimsResult{UserID: claims.UserID, Role: claims.Role}, nil
}

type claimsResult struct {
	UserID string
	Role   string
}
