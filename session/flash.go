// Package session file: session/flash.go
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go-event-portal/logger"
)

// flash kinds, rendered as blocking notices on the next page
const (
	FlashError   = "error"
	FlashSuccess = "success"
)

// Flash queues a one-shot notice for the next rendered page. It is a no-op
// without session middleware.
func Flash(c *gin.Context, kind, message string) {
	if _, exists := c.Get(sessions.DefaultKey); !exists {
		return
	}
	s := sessions.Default(c)
	s.AddFlash(message, kind)
	if err := s.Save(); err != nil {
		logger.Error.Printf("Flash: failed to save session: %v", err)
	}
}

// Notices drains the pending notices of one kind.
func Notices(c *gin.Context, kind string) []string {
	if _, exists := c.Get(sessions.DefaultKey); !exists {
		return nil
	}
	s := sessions.Default(c)
	raw := s.Flashes(kind)
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(); err != nil {
		logger.Error.Printf("Notices: failed to save session: %v", err)
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if msg, ok := v.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
