package http

import (
	"github.com/gin-gonic/gin"

	"blog-server/internal/domain"
)

const identityKey = "identity"

// sessionMiddleware restores the login identity for every request: cookie
// token -> session store -> user record. Any failure along the way leaves the
// request Anonymous; it never errors the page.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(h.cookieName)
		if err == nil && token != "" {
			user, err := h.sessions.Resolve(c.Request.Context(), token)
			if err == nil && user != nil {
				c.Set(identityKey, user)
			}
		}
		c.Next()
	}
}

// currentIdentity reads the identity attached by the middleware. A pure read
// of request state: no side effects, no shared process state.
func currentIdentity(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}

// authFlag is the 0/1 display flag every view receives, computed fresh per
// request from the attached identity.
func authFlag(c *gin.Context) int {
	if _, ok := currentIdentity(c); ok {
		return 1
	}
	return 0
}
