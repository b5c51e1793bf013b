// Package session file: session/accessor.go
package session

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"go-event-portal/logger"
	"go-event-portal/models"
)

// keys of the session triple; nothing outside this package touches them
const (
	keyToken = "token"
	keyRole  = "role"
	keyUser  = "user"
)

var (
	ErrMissingToken = errors.New("session: token is empty")
	ErrMissingUser  = errors.New("session: user profile is missing")
	ErrUnknownRole  = errors.New("session: user role is not recognised")
	ErrNoStorage    = errors.New("session: no storage available")
)

// Accessor reads and writes the session triple. A nil storage means no
// session exists: every read reports absent and nothing is ever written.
type Accessor struct {
	store Storage
}

// New returns an Accessor over store. store may be nil.
func New(store Storage) *Accessor {
	return &Accessor{store: store}
}

// FromContext returns the Accessor for the current request.
func FromContext(c *gin.Context) *Accessor {
	return New(StorageFromContext(c))
}

func (a *Accessor) get(key string) (string, bool) {
	if a == nil || a.store == nil {
		return "", false
	}
	v, ok := a.store.Get(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// ------------------ accessors ------------------

// Token returns the backend access token.
func (a *Accessor) Token() (string, bool) {
	return a.get(keyToken)
}

// Role returns the stored role. Unknown role strings read as absent.
func (a *Accessor) Role() (models.Role, bool) {
	raw, ok := a.get(keyRole)
	if !ok {
		return "", false
	}
	return models.ParseRole(raw)
}

// User returns the stored profile. A profile that no longer decodes reads
// as absent.
func (a *Accessor) User() (*models.User, bool) {
	raw, ok := a.get(keyUser)
	if !ok {
		return nil, false
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		logger.Warn.Printf("Accessor.User: discarding unreadable profile: %v", err)
		return nil, false
	}
	return &u, true
}

// Email is derived from the stored profile.
func (a *Accessor) Email() (string, bool) {
	u, ok := a.User()
	if !ok || u.Email == "" {
		return "", false
	}
	return u.Email, true
}

// ------------------ predicates ------------------

// IsAuthenticated reports whether a token is stored.
func (a *Accessor) IsAuthenticated() bool {
	_, ok := a.Token()
	return ok
}

// IsAdmin reports whether the stored role is ADMIN.
func (a *Accessor) IsAdmin() bool {
	r, ok := a.Role()
	return ok && r == models.RoleAdmin
}

// IsUser reports whether the stored role is USER.
func (a *Accessor) IsUser() bool {
	r, ok := a.Role()
	return ok && r == models.RoleUser
}

// ------------------ lifecycle ------------------

// Login writes the whole triple after a successful backend login.
func (a *Accessor) Login(token string, user *models.User) error {
	if a == nil || a.store == nil {
		return ErrNoStorage
	}
	if token == "" {
		return ErrMissingToken
	}
	if user == nil {
		return ErrMissingUser
	}
	role, ok := models.ParseRole(user.Role)
	if !ok {
		return ErrUnknownRole
	}

	profile, err := json.Marshal(user)
	if err != nil {
		return err
	}

	a.store.Set(keyToken, token)
	a.store.Set(keyRole, string(role))
	a.store.Set(keyUser, string(profile))
	return a.store.Save()
}

// Logout clears all three fields. The backend is not informed.
func (a *Accessor) Logout() error {
	if a == nil || a.store == nil {
		return nil
	}
	a.store.Delete(keyToken)
	a.store.Delete(keyRole)
	a.store.Delete(keyUser)
	return a.store.Save()
}

// ------------------ view state ------------------

// State is a read-only snapshot handed to templates.
type State struct {
	Authenticated bool
	Admin         bool
	User          bool
	Role          models.Role
	Email         string
	Name          string
}

// Snapshot captures the current session for rendering.
func (a *Accessor) Snapshot() State {
	st := State{
		Authenticated: a.IsAuthenticated(),
		Admin:         a.IsAdmin(),
		User:          a.IsUser(),
	}
	st.Role, _ = a.Role()
	if u, ok := a.User(); ok {
		st.Email = u.Email
		st.Name = u.DisplayName()
	}
	return st
}
