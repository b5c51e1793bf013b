// file: controllers/test_helpers_test.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go-event-portal/models"
	"go-event-portal/session"
)

const testSessionName = "testsession"

// setupTestRouter creates a new Gin engine with session middleware and fake
// HTML templates. It also registers /test-login?role=... which signs in as
// tester@example.com with token "tok".
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Set up sessions with cookie store.
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions(testSessionName, store))

	// Create minimal templates to avoid panics during testing.
	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.SetFuncMap(TemplateFuncs())
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))

	router.GET("/test-login", func(c *gin.Context) {
		user := &models.User{Firstname: "Tess", Email: "tester@example.com", Role: c.Query("role")}
		if err := session.FromContext(c).Login("tok", user); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "session set")
	})
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to the provided directory.
func createDummyTemplates(dir string) error {
	notices := `{{range .FormErrors}}err:{{.}};{{end}}{{range .Errors}}flash-err:{{.}};{{end}}{{range .Successes}}ok:{{.}};{{end}}`
	list := `{{range .Events}}[{{.DisplayID}}]{{end}}`
	templates := map[string]string{
		"home.html":            list + `{{with .FetchError}}fetch:{{.}}{{end}}` + notices,
		"events.html":          `{{if .LoginRequired}}login-required{{end}}` + list + notices,
		"event_detail.html":    `{{.Event.Title}}|{{price .Event.Price}}|{{.ShareURL}}` + notices,
		"checkout.html":        `{{.Event.Title}}|{{price .Event.Price}}`,
		"login.html":           `login` + notices,
		"register.html":        `register` + notices,
		"about.html":           `about {{.Session.Authenticated}}`,
		"admin_dashboard.html": `dashboard` + list + notices,
		"event_create.html":    `create` + notices,
		"promotions.html":      `promotions` + list + `{{with .FetchError}}fetch:{{.}}{{end}}` + notices,
		"error.html":           `{{.Status}}:{{.Message}}`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// sessionCookie returns the session cookie set on a response, if any. Every
// session save adds a Set-Cookie header, so the last one wins.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	var last *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == testSessionName {
			last = c
		}
	}
	return last
}

// loginAs signs in through /test-login and returns the session cookie.
func loginAs(t *testing.T, router *gin.Engine, role string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test-login?role="+role, nil))
	require.Equal(t, http.StatusOK, w.Code)

	c := sessionCookie(w)
	require.NotNil(t, c, "session cookie not set")
	return c
}

// get performs a GET with an optional session cookie.
func get(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// postForm performs a form POST with an optional session cookie.
func postForm(router *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
