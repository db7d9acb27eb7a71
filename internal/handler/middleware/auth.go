package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"fleetrent/internal/handler/httperr"
	"fleetrent/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStaffIDKey = "staff_id"
	ctxOwnerIDKey = "owner_id"
	ctxRoleKey    = "staff_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the tenant scope from the bearer token. Every
// owner-facing route depends on the owner_id it sets.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, nil, "Access token required")
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, nil, "Invalid or expired token")
			return
		}

		c.Set(ctxStaffIDKey, identity.StaffID)
		c.Set(ctxOwnerIDKey, identity.OwnerID)
		c.Set(ctxRoleKey, identity.Role)
		c.Set("jwt_claims", map[string]any{
			"staff_id": identity.StaffID.String(),
			"owner_id": identity.OwnerID.String(),
			"role":     identity.Role,
		})
		c.Next()
	}
}

func GetOwnerID(c *gin.Context) (uuid.UUID, bool) {
	ownerID, exists := c.Get(ctxOwnerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := ownerID.(uuid.UUID)
	return id, ok
}
