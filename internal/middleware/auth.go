package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

const userContextKey = "auth_user"

// Auth verifies the bearer token and attaches the resolved user to the
// request context. It is the only verification path for protected routes.
func Auth(auth Authenticator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"message": domain.ErrUnauthenticated.Error()},
			)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"message": domain.ErrUnauthenticated.Error()},
			)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// UserFrom returns the authenticated user attached by Auth.
func UserFrom(c *ginext.Context) (*domain.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}
