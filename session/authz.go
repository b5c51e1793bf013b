// Package session file: session/authz.go
package session

// Verdict is the outcome of an authorization check. Deciding and navigating
// are separate: callers act on the verdict.
type Verdict int

const (
	Allowed Verdict = iota
	RedirectToLogin
	RedirectToHome
)

const (
	LoginPath = "/login"
	HomePath  = "/home"
)

// AdminDeniedNotice is shown to authenticated non-admins before the redirect.
const AdminDeniedNotice = "Access denied! Only administrators can open this page."

func (v Verdict) String() string {
	switch v {
	case Allowed:
		return "allowed"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToHome:
		return "redirect-to-home"
	}
	return "unknown"
}

// Location is where the caller should navigate, or "" when allowed.
func (v Verdict) Location() string {
	switch v {
	case RedirectToLogin:
		return LoginPath
	case RedirectToHome:
		return HomePath
	}
	return ""
}

// RequireAuth allows any authenticated session.
func RequireAuth(a *Accessor) Verdict {
	if !a.IsAuthenticated() {
		return RedirectToLogin
	}
	return Allowed
}

// RequireAdmin allows authenticated sessions holding the ADMIN role.
func RequireAdmin(a *Accessor) Verdict {
	if v := RequireAuth(a); v != Allowed {
		return v
	}
	if !a.IsAdmin() {
		return RedirectToHome
	}
	return Allowed
}
