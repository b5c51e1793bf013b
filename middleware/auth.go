// Package middleware provides request filters and security checks for the portal.
// File: middleware/auth.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"go-event-portal/session"
)

// -------------- authentication middleware --------------

var authGate = Gate("AuthRequired", session.RequireAuth)

// AuthRequired is a middleware that ensures the visitor is logged in.
// How it works:
// - Reads the session triple through session.Accessor.
// - If no token is stored, redirects to "/login" and aborts execution.
// - Otherwise, the request proceeds.
// Usage:
//
//	router.Use(AuthRequired)
func AuthRequired(c *gin.Context) {
	authGate(c)
}
