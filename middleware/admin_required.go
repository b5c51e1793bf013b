// Package middleware description is Middleware that checks if the user is an admin.
// file: middleware/admin_required.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"go-event-portal/session"
)

// AdminRequired is a middleware that checks if the user is an admin.
// Guests go to "/login"; authenticated non-admins get a blocking notice
// and go to "/home".
func AdminRequired() gin.HandlerFunc {
	return Gate("AdminRequired", session.RequireAdmin)
}
