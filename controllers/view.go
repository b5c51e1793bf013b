// Package controllers renders the portal's pages.
// File: controllers/view.go
package controllers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go-event-portal/backend"
	"go-event-portal/events"
	"go-event-portal/session"
)

// user-facing messages
const (
	msgUnreachable     = "Could not reach the server. Please make sure the backend is running and try again."
	msgIncomplete      = "Incomplete data from the server. Please contact the administrator."
	msgLoginFailed     = "Wrong email or password. Please try again."
	msgRegisterFailed  = "Registration failed. Please try again."
	msgEventsFailed    = "Failed to load events."
	msgEventNotFound   = "Event not found."
	msgUnknownRole     = "Role not recognised!"
	msgInternal        = "Internal error, please try again."
	msgPromotionFailed = "Something went wrong"
)

// TemplateFuncs are the helpers every page template may call.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"price": events.FormatPrice,
	}
}

// page collects the data every template receives: the session snapshot and
// the pending notices, merged with the page's own values.
func page(c *gin.Context, data gin.H) gin.H {
	out := gin.H{
		"Session":   session.FromContext(c).Snapshot(),
		"Errors":    session.Notices(c, session.FlashError),
		"Successes": session.Notices(c, session.FlashSuccess),
		"RequestID": c.GetString("requestID"),
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

// userMessage turns a backend error into text for the visitor. fallback is
// used for rejections that carry no backend message.
func userMessage(err error, fallback string) string {
	var rejected *backend.RejectedError
	switch {
	case errors.Is(err, backend.ErrUnreachable):
		return msgUnreachable
	case errors.Is(err, backend.ErrIncompleteResponse):
		return msgIncomplete
	case errors.Is(err, backend.ErrNotFound):
		return msgEventNotFound
	case errors.As(err, &rejected):
		if strings.TrimSpace(rejected.Message) != "" {
			return rejected.Message
		}
		return fallback
	}
	return fallback
}

// bearer returns the session token, or "" for guests.
func bearer(c *gin.Context) string {
	token, _ := session.FromContext(c).Token()
	return token
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", page(c, gin.H{"Status": status, "Message": message}))
}

// formMemory matches gin's default multipart memory limit.
const formMemory = 32 << 20

// trimFormFields strips surrounding whitespace from the named form values
// before binding, so validation sees what the backend will receive.
func trimFormFields(c *gin.Context, keys ...string) {
	req := c.Request
	if err := req.ParseMultipartForm(formMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return
	}
	sets := []url.Values{req.Form, req.PostForm}
	if req.MultipartForm != nil {
		sets = append(sets, req.MultipartForm.Value)
	}
	for _, values := range sets {
		for _, key := range keys {
			for i, v := range values[key] {
				values[key][i] = strings.TrimSpace(v)
			}
		}
	}
}

// statusFor maps a backend error to the response status. rejected is used
// when the backend refused the request.
func statusFor(err error, rejected int) int {
	var r *backend.RejectedError
	switch {
	case errors.Is(err, backend.ErrUnreachable):
		return http.StatusServiceUnavailable
	case errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &r):
		return rejected
	}
	return http.StatusBadGateway
}

// fieldLabels names form fields in validation messages.
var fieldLabels = map[string]string{
	"Firstname":       "First name",
	"Lastname":        "Last name",
	"ConfirmPassword": "Password confirmation",
	"EventID":         "Event",
	"StartDate":       "Start date",
	"EndDate":         "End date",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// validationMessages turns a form binding error into one message per field.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid form submission."}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := label(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, name+" is required")
		case "email":
			msgs = append(msgs, "Invalid email format")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", name, fe.Param()))
		case "eqfield":
			msgs = append(msgs, "Passwords do not match")
		case "numeric":
			msgs = append(msgs, name+" is not a valid number")
		case "gte":
			msgs = append(msgs, name+" must not be negative")
		default:
			msgs = append(msgs, name+" is invalid")
		}
	}
	return msgs
}
