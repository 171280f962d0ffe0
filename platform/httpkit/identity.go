// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Identity represents the authenticated caller. The service has a single
// internal principal, so an identity is just its token subject.
type Identity interface {
	// Subject returns the authenticated username.
	Subject() string
	// IsAuthenticated returns true if the caller presented a valid token.
	IsAuthenticated() bool
}

type identity struct {
	subject       string
	authenticated bool
}

func (i *identity) Subject() string {
	return i.subject
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if no subject is present.
func GetIdentity(c *gin.Context) Identity {
	subject, ok := c.Get(ContextSubjectKey)
	if !ok {
		return &identity{}
	}

	name, ok := subject.(string)
	if !ok || name == "" {
		return &identity{}
	}

	return &identity{subject: name, authenticated: true}
}

// MustGetIdentity extracts the Identity from a Gin context, aborting
// with 401 Unauthorized when the caller is not authenticated.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return id
}
