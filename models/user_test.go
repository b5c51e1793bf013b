// file: models/user_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("ADMIN")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	role, ok = ParseRole("USER")
	assert.True(t, ok)
	assert.Equal(t, RoleUser, role)

	_, ok = ParseRole("admin")
	assert.False(t, ok, "role matching is case-sensitive")

	_, ok = ParseRole("")
	assert.False(t, ok)
}

// Test: a backend login payload decodes into the profile record
func TestUserFromBackendJSON(t *testing.T) {
	raw := `{"id":7,"firstname":"Sari","lastname":"Dewi","email":"sari@example.com","role":"USER","points":0}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))

	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "sari@example.com", u.Email)
	assert.Equal(t, "USER", u.Role)
	assert.Equal(t, "Sari", u.DisplayName())
}

func TestUserDisplayName_FallsBackToEmail(t *testing.T) {
	u := User{Email: "guest@example.com"}
	assert.Equal(t, "guest@example.com", u.DisplayName())
}
