// Package backend file: backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go-event-portal/logger"
	"go-event-portal/metrics"
	"go-event-portal/models"
)

// maxBodyBytes caps how much of a backend response is read.
const maxBodyBytes = 1 << 20

// Client is everything the portal asks of the backend.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	ListEvents(ctx context.Context, token string) ([]models.RemoteEvent, error)
	GetEvent(ctx context.Context, token string, id int64) (*models.RemoteEvent, error)
	CreatePromotion(ctx context.Context, token string, req PromotionRequest) error
}

// ------------------ request / result types ------------------

// LoginResult is a validated successful login.
type LoginResult struct {
	Token        string
	User         *models.User
	Message      string
	RedirectPath string // path only; empty when the backend sent none
}

// RegisterRequest is the account creation payload.
type RegisterRequest struct {
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ReferralCode string `json:"referralCode"`
}

// RegisterResult carries the backend's confirmation message.
type RegisterResult struct {
	Message string
}

// PromotionRequest is the voucher creation payload. Values are sent as the
// form captured them.
type PromotionRequest struct {
	EventID   string `json:"eventId"`
	Code      string `json:"code"`
	Discount  string `json:"discount"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// wire shapes
type loginResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	Token       string       `json:"token"`
	User        *models.User `json:"user"`
	RedirectURL string       `json:"redirectUrl"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type eventListResponse struct {
	Data []models.RemoteEvent `json:"data"`
}

type eventResponse struct {
	Data *models.RemoteEvent `json:"data"`
}

// ------------------ HTTP implementation ------------------

// HTTPClient talks JSON to the backend API. Calls are never retried.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	sanitizer *bluemonday.Policy
}

var _ Client = (*HTTPClient)(nil)

// NewClient creates an HTTPClient for baseURL (e.g. http://localhost:8000).
func NewClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = NewHTTPClient(10 * time.Second)
	}
	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      httpClient,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// do sends one request and returns the status and the (capped) body.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, payload interface{}) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: reading %s %s: %v", ErrUnreachable, method, path, err)
	}
	return resp.StatusCode, data, nil
}

func ok(status int) bool { return status >= 200 && status < 300 }

// Login authenticates against POST /api/auth/login.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (res *LoginResult, err error) {
	defer observe("login", time.Now(), &err)

	status, data, err := c.do(ctx, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var body loginResponse
	decodeErr := json.Unmarshal(data, &body)
	if !ok(status) {
		return nil, &RejectedError{Status: status, Message: body.Message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: login: %v", ErrIncompleteResponse, decodeErr)
	}
	if !body.Success {
		return nil, &RejectedError{Status: status, Message: body.Message}
	}
	if body.User == nil || body.User.Role == "" {
		return nil, fmt.Errorf("%w: login response has no user role", ErrIncompleteResponse)
	}
	if body.Token == "" {
		return nil, fmt.Errorf("%w: login response has no token", ErrIncompleteResponse)
	}

	return &LoginResult{
		Token:        body.Token,
		User:         body.User,
		Message:      body.Message,
		RedirectPath: redirectPath(body.RedirectURL),
	}, nil
}

// Register creates an account via POST /api/auth/register.
func (c *HTTPClient) Register(ctx context.Context, r RegisterRequest) (res *RegisterResult, err error) {
	defer observe("register", time.Now(), &err)

	status, data, err := c.do(ctx, http.MethodPost, "/api/auth/register", "", r)
	if err != nil {
		return nil, err
	}

	// an undecodable body leaves Success false and counts as a rejection
	var body messageResponse
	_ = json.Unmarshal(data, &body)
	if !ok(status) || !body.Success {
		return nil, &RejectedError{Status: status, Message: firstNonEmpty(body.Message, body.Error)}
	}
	return &RegisterResult{Message: body.Message}, nil
}

// ListEvents fetches GET /api/event. token may be empty.
func (c *HTTPClient) ListEvents(ctx context.Context, token string) (list []models.RemoteEvent, err error) {
	defer observe("list_events", time.Now(), &err)

	status, data, err := c.do(ctx, http.MethodGet, "/api/event", token, nil)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, &RejectedError{Status: status, Message: "failed to fetch events"}
	}

	var body eventListResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: events: %v", ErrIncompleteResponse, err)
	}
	for i := range body.Data {
		c.sanitize(&body.Data[i])
	}
	if body.Data == nil {
		body.Data = []models.RemoteEvent{}
	}
	return body.Data, nil
}

// GetEvent fetches GET /api/event/{id}. token may be empty.
func (c *HTTPClient) GetEvent(ctx context.Context, token string, id int64) (ev *models.RemoteEvent, err error) {
	defer observe("get_event", time.Now(), &err)

	status, data, err := c.do(ctx, http.MethodGet, "/api/event/"+strconv.FormatInt(id, 10), token, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	if !ok(status) {
		return nil, &RejectedError{Status: status, Message: "event not found"}
	}

	var body eventResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: event %d: %v", ErrIncompleteResponse, id, err)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	c.sanitize(body.Data)
	return body.Data, nil
}

// CreatePromotion posts a voucher to POST /api/promotions.
func (c *HTTPClient) CreatePromotion(ctx context.Context, token string, r PromotionRequest) (err error) {
	defer observe("create_promotion", time.Now(), &err)

	status, data, err := c.do(ctx, http.MethodPost, "/api/promotions", token, r)
	if err != nil {
		return err
	}
	if !ok(status) {
		var body messageResponse
		_ = json.Unmarshal(data, &body)
		return &RejectedError{Status: status, Message: firstNonEmpty(body.Error, body.Message)}
	}
	return nil
}

// ------------------ helpers ------------------

// sanitize strips markup from backend-provided text before it is rendered.
func (c *HTTPClient) sanitize(e *models.RemoteEvent) {
	e.Title = c.plainText(e.Title)
	e.Description = c.plainText(e.Description)
	e.Location = c.plainText(e.Location)
	e.Category = c.plainText(e.Category)
}

// plainText drops all markup. The policy's entity escaping is undone
// because html/template escapes again at render time.
func (c *HTTPClient) plainText(s string) string {
	return html.UnescapeString(c.sanitizer.Sanitize(s))
}

// redirectPath reduces a backend redirect URL to a local path so the
// portal never redirects off-site.
func redirectPath(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		logger.Warn.Printf("redirectPath: ignoring unparsable redirectUrl %q", raw)
		return ""
	}
	p := u.EscapedPath()
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return ""
	}
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func observe(operation string, start time.Time, err *error) {
	outcome := outcomeOf(*err)
	metrics.ObserveBackendCall(operation, outcome, time.Since(start))
	if *err != nil && !errors.Is(*err, ErrNotFound) {
		logger.Warn.Printf("backend %s failed: %v", operation, *err)
	}
}
