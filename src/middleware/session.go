package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/techmagnet/seacheck/src/models"
	"github.com/techmagnet/seacheck/src/services"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "seacheck_session"

// SessionContextKey is the gin context key holding the loaded session
const SessionContextKey = "session"

// sessionSecret signs session cookies; initialized at startup from config
var sessionSecret string

// SetSessionSecret initializes the cookie signing secret
func SetSessionSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("session secret cannot be empty")
	}
	if len(secret) < 32 {
		return fmt.Errorf("session secret must be at least 32 characters long")
	}
	sessionSecret = secret
	return nil
}

// SessionClaims wraps the session ID in a signed token. The cookie is only a
// signed pointer; the session state itself lives in the store, so logout can
// revoke it server-side.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs a token for a session, expiring with the session
func IssueSessionToken(session *models.Session) (string, error) {
	if sessionSecret == "" {
		return "", fmt.Errorf("session secret not initialized")
	}

	claims := SessionClaims{
		SessionID: session.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "seacheck",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sessionSecret))
}

// ParseSessionToken verifies a token and returns the session ID it carries
func ParseSessionToken(tokenString string) (uuid.UUID, error) {
	if sessionSecret == "" {
		return uuid.Nil, fmt.Errorf("session secret not initialized")
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(sessionSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid session token: %w", err)
	}

	id, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session id in token: %w", err)
	}

	return id, nil
}

// loadSession resolves the request's cookie to a live stored session
func loadSession(c *gin.Context, sessions *services.SessionService) (*models.Session, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return nil, err
	}

	id, err := ParseSessionToken(cookie)
	if err != nil {
		return nil, err
	}

	return sessions.GetSession(c.Request.Context(), id)
}

// SessionRequired loads the session for any authenticated caller, admin or
// not, and aborts with 401 when no live session backs the request.
func SessionRequired(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := loadSession(c, sessions)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// AdminRequired gates admin-only endpoints: the request passes only when its
// session's admin flag is true.
func AdminRequired(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := loadSession(c, sessions)
		if err != nil || !session.Admin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// GetSession retrieves the loaded session from the gin context
func GetSession(c *gin.Context) *models.Session {
	if v, exists := c.Get(SessionContextKey); exists {
		if s, ok := v.(*models.Session); ok {
			return s
		}
	}
	return nil
}
