// Package identity carries the authenticated caller through the request.
// It is resolved once by the auth middleware and handed explicitly to
// every use case.
package identity

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
)

const contextKey = "identity"

type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Require returns the owner id of who, or an auth error when there is no
// resolved caller.
func Require(who *Identity) (uuid.UUID, error) {
	if who == nil || who.UserID == uuid.Nil {
		return uuid.Nil, httperr.ErrAuth("unauthenticated")
	}
	return who.UserID, nil
}

func Set(c *gin.Context, who Identity) {
	c.Set(contextKey, who)
}

// FromGin returns the identity stored by the auth middleware, or nil.
func FromGin(c *gin.Context) *Identity {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	who, ok := v.(Identity)
	if !ok {
		return nil
	}
	return &who
}
