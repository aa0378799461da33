package auth

import (
	"net/http"
	"strings"
	"time"

	"feedback-hub-backend/internal/database/models"
	"feedback-hub-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actorKey is the gin context key holding the authenticated user
const actorKey = "actor"

// UserStore is the narrow repository surface the middleware needs to resolve
// a token subject into a live user
type UserStore interface {
	GetByID(id uuid.UUID) (*models.User, error)
	UpdateLastLogin(id uuid.UUID, at time.Time) error
}

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
	users   UserStore
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service, users UserStore) *Middleware {
	return &Middleware{service: service, users: users}
}

// RequireAuth validates the bearer token, loads the active user and stores it
// in the request context. Deactivated or deleted accounts fail with 401.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		userID, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		user, err := m.users.GetByID(userID)
		if err != nil || user == nil || !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found or inactive"})
			c.Abort()
			return
		}

		if err := m.users.UpdateLastLogin(user.ID, time.Now()); err != nil {
			logger.New().WithField("user", user.Email).WithError(err).Warn("failed to update last login")
		}

		c.Set(actorKey, user)
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)

		c.Next()
	}
}

// RequireRole fails with 403 unless the authenticated user's role is in the
// allowed set. Must run after RequireAuth.
func (m *Middleware) RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, role := range allowed {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied for your role"})
		c.Abort()
	}
}

// CurrentUser extracts the authenticated user from the gin context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	return user, ok
}
