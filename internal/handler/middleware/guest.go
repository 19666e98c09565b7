package middleware

import (
	"wishlink/internal/domain/guest"

	"github.com/gin-gonic/gin"
)

// GuestTokenHeader carries the browser-generated guest identity that scopes
// reservations and contributions to one visitor.
const GuestTokenHeader = "X-Guest-Token"

const ctxGuestIdentityKey = "guest_identity"

// GuestIdentity extracts the guest token into the request context. A missing
// or malformed token is not an error here; operations that need one reject it
// themselves.
func GuestIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(GuestTokenHeader)
		if raw != "" {
			if id, err := guest.NewIdentity(raw); err == nil {
				c.Set(ctxGuestIdentityKey, id)
			}
		}
		c.Next()
	}
}

// GetGuestIdentity returns the viewer's guest identity, or a zero identity
// when the request carried no usable token.
func GetGuestIdentity(c *gin.Context) guest.Identity {
	v, exists := c.Get(ctxGuestIdentityKey)
	if !exists {
		return guest.Identity{}
	}
	id, ok := v.(guest.Identity)
	if !ok {
		return guest.Identity{}
	}
	return id
}
