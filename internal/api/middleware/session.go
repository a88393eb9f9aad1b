package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	sessionCtxKey = "session_id"

	// Drafts are tab-session scoped; the cookie just needs to outlive a
	// browsing session comfortably.
	sessionMaxAge = 24 * 60 * 60
)

// Session ensures every request carries a session id, issuing a cookie on
// first contact. All basket and quote draft state is keyed by this id.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}

		c.Set(sessionCtxKey, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the session id from the request context.
func GetSessionID(c *gin.Context) string {
	if sessionID, ok := c.Get(sessionCtxKey); ok {
		return sessionID.(string)
	}
	return ""
}
