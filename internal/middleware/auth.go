package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tradelog/internal/auth"
	apperrors "tradelog/internal/errors"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// TokenVerifier validates a bearer token.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Identity, error)
}

// AuthMiddleware verifies the bearer token and stores the caller identity in
// the context. A missing header or token answers 401; a token that fails
// verification answers 403.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			WriteError(c, apperrors.ErrUnauthorized)
			return
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			WriteError(c, err)
			return
		}

		c.Set(ContextUserID, identity.ID)
		c.Set(ContextUsername, identity.Username)
		c.Set(ContextRole, identity.Role)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by AuthMiddleware.
func IdentityFrom(c *gin.Context) (*auth.Identity, bool) {
	id := c.GetString(ContextUserID)
	if id == "" {
		return nil, false
	}
	return &auth.Identity{
		ID:       id,
		Username: c.GetString(ContextUsername),
		Role:     c.GetString(ContextRole),
	}, true
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
