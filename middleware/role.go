// Package middleware file: middleware/role.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go-event-portal/logger"
	"go-event-portal/metrics"
	"go-event-portal/session"
)

// Decision computes a verdict for the current session.
type Decision func(a *session.Accessor) session.Verdict

// Gate turns a Decision into middleware. Denied requests are redirected to
// the verdict's location; a RedirectToHome verdict also queues the
// admin-denied notice for the landing page.
func Gate(name string, decide Decision) gin.HandlerFunc {
	return func(c *gin.Context) {
		verdict := decide(session.FromContext(c))
		metrics.RecordGate(name, verdict.String())

		if verdict == session.Allowed {
			logger.Debug.Printf("[%s] %s %s allowed", name, c.Request.Method, c.Request.URL.Path)
			c.Next()
			return
		}

		logger.Warn.Printf("[%s] %s %s denied: %s", name, c.Request.Method, c.Request.URL.Path, verdict)
		if verdict == session.RedirectToHome {
			session.Flash(c, session.FlashError, session.AdminDeniedNotice)
		}
		c.Redirect(http.StatusFound, verdict.Location())
		c.Abort() // 🔴 prevents further execution
	}
}
