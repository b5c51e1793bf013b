// Package session owns the client session triple (token, role, user profile)
// and the authorization decisions derived from it.
// File: session/storage.go
package session

import (
	"sync"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Storage is the durable key/value store the session triple lives in.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	Save() error
}

// -------------- gin-contrib/sessions adapter --------------

// GinStorage adapts a gin-contrib session (cookie backed in production).
type GinStorage struct {
	s sessions.Session
}

// NewGinStorage wraps s.
func NewGinStorage(s sessions.Session) *GinStorage {
	return &GinStorage{s: s}
}

func (g *GinStorage) Get(key string) (string, bool) {
	v, ok := g.s.Get(key).(string)
	return v, ok
}

func (g *GinStorage) Set(key, value string) { g.s.Set(key, value) }

func (g *GinStorage) Delete(key string) { g.s.Delete(key) }

func (g *GinStorage) Save() error { return g.s.Save() }

// StorageFromContext returns the request's session storage, or nil when the
// sessions middleware is not installed on this route.
func StorageFromContext(c *gin.Context) Storage {
	if _, exists := c.Get(sessions.DefaultKey); !exists {
		return nil
	}
	return NewGinStorage(sessions.Default(c))
}

// -------------- in-memory storage --------------

// MemoryStorage is an in-process Storage, used by tests and tooling.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
	Saves  int
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

func (m *MemoryStorage) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	return nil
}
