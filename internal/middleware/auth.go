package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Placify/internal/dto"
	"github.com/lshigami/Placify/internal/model"
	"github.com/lshigami/Placify/internal/repository"
	"github.com/rs/zerolog/log"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "placify_session"

const authContextKey = "authContext"

// AuthContext is the request-scoped identity injected by RequireAuth. It
// replaces any ambient/global notion of "the logged-in user": handlers and
// services only ever see this value.
type AuthContext struct {
	UserID   uint
	Username string
	FullName string
	Role     string
}

// FromContext returns the AuthContext set by RequireAuth for this request.
func FromContext(c *gin.Context) (AuthContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return AuthContext{}, false
	}
	auth, ok := v.(AuthContext)
	return auth, ok
}

// RequireAuth resolves the session cookie to a user and injects the
// AuthContext. Requests without a valid, unexpired session get 401.
func RequireAuth(sessionRepo repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
			return
		}

		session, err := sessionRepo.FindByToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
			return
		}
		if time.Now().After(session.ExpiresAt) {
			if err := sessionRepo.DeleteByToken(token); err != nil {
				log.Warn().Err(err).Msg("RequireAuth: failed to delete expired session")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Session expired"))
			return
		}

		c.Set(authContextKey, AuthContext{
			UserID:   session.User.ID,
			Username: session.User.Username,
			FullName: session.User.FullName,
			Role:     session.User.Role,
		})
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests whose role is not admin. It
// must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := FromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Not logged in"))
			return
		}
		if auth.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Unauthorized"))
			return
		}
		c.Next()
	}
}
