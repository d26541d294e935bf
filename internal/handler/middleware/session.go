package middleware

import (
	"log/slog"
	"net/http"

	"splitpay/internal/pkg/sessiontoken"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderSessionToken carries the opaque device session a claim is bound to.
	HeaderSessionToken = "X-Session-Token"

	ctxSessionTokenKey   = "session_token"
	ctxSessionTokenIDKey = "session_token_id"
)

type SessionMiddleware struct {
	tokens *sessiontoken.Service
}

func NewSessionMiddleware(tokens *sessiontoken.Service) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// RequireSession rejects requests without a valid session token. Claim
// mutations are only ever allowed for the session that created the claim.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderSessionToken)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		tokenID, err := m.tokens.Validate(token)
		if err != nil {
			slog.Warn("session token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session token",
			})
			c.Abort()
			return
		}

		c.Set(ctxSessionTokenKey, token)
		c.Set(ctxSessionTokenIDKey, tokenID)
		c.Next()
	}
}

// OptionalSession stashes a valid token when present but never aborts.
// Claim creation mints a fresh session for first-time devices.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderSessionToken)
		if token == "" {
			c.Next()
			return
		}

		tokenID, err := m.tokens.Validate(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxSessionTokenKey, token)
		c.Set(ctxSessionTokenIDKey, tokenID)
		c.Next()
	}
}

func GetSessionToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionTokenKey)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

func GetSessionTokenID(c *gin.Context) string {
	if v, exists := c.Get(ctxSessionTokenIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
