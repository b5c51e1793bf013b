// file: controllers/admin_controller_test.go
package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go-event-portal/backend"
	"go-event-portal/middleware"
)

func setupAdminRouter(t *testing.T) (*gin.Engine, *backend.MockClient) {
	router := setupTestRouter(t)
	client := new(backend.MockClient)
	ac := NewAdminController(client)
	pc := NewPageController(client, "http://portal.test")

	router.GET("/home", pc.Home)
	admin := router.Group("/", middleware.AdminRequired())
	admin.GET("/admin", ac.RedirectToDashboard)
	admin.GET("/admin/dashboard", ac.Dashboard)
	admin.GET("/events/create", ac.ShowCreateEvent)
	admin.POST("/events/create", ac.CreateEvent)
	admin.GET("/promotions", ac.ShowPromotions)
	admin.POST("/promotions", ac.CreatePromotion)
	return router, client
}

func promotionValues() url.Values {
	return url.Values{
		"eventId":   {"7"},
		"code":      {"HEMAT10"},
		"discount":  {"10"},
		"startDate": {"2025-01-01"},
		"endDate":   {"2025-02-01"},
	}
}

// Test: guests and regular users never reach the admin pages
func TestAdminPages_Gated(t *testing.T) {
	router, client := setupAdminRouter(t)

	w := get(router, "/admin/dashboard", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookie := loginAs(t, router, "USER")
	w = get(router, "/promotions", cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))

	client.On("ListEvents", mock.Anything, "tok").Return(nil, nil)
	home := get(router, "/home", sessionCookie(w))
	assert.Contains(t, home.Body.String(), "flash-err:Access denied! Only administrators can open this page.;")

	w = postForm(router, "/promotions", promotionValues(), cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	client.AssertNotCalled(t, "CreatePromotion", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmin_RedirectToDashboard(t *testing.T) {
	router, _ := setupAdminRouter(t)
	cookie := loginAs(t, router, "ADMIN")

	w := get(router, "/admin", cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
}

func TestDashboard(t *testing.T) {
	router, client := setupAdminRouter(t)
	client.On("ListEvents", mock.Anything, "tok").Return(remoteFixture(), nil)
	cookie := loginAs(t, router, "ADMIN")

	w := get(router, "/admin/dashboard", cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dashboard[backend-7][backend-9]", w.Body.String())
}

func TestDashboard_BackendFailure(t *testing.T) {
	router, client := setupAdminRouter(t)
	client.On("ListEvents", mock.Anything, "tok").Return(nil, backend.ErrUnreachable)
	cookie := loginAs(t, router, "ADMIN")

	w := get(router, "/admin/dashboard", cookie)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "503:"+msgUnreachable, w.Body.String())
}

// ---------------- event creation ----------------

func TestCreateEvent(t *testing.T) {
	router, client := setupAdminRouter(t)
	client.On("ListEvents", mock.Anything, "tok").Return(nil, nil)
	cookie := loginAs(t, router, "ADMIN")

	assert.Equal(t, "create", get(router, "/events/create", cookie).Body.String())

	w := postForm(router, "/events/create", url.Values{
		"title": {"Jazz Night"}, "date": {"2025-09-01"}, "location": {"Jakarta"}, "price": {"50000"},
	}, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	assert.Equal(t, "dashboardok:Event created!;", get(router, "/admin/dashboard", sessionCookie(w)).Body.String())
}

func TestCreateEvent_Validation(t *testing.T) {
	router, _ := setupAdminRouter(t)
	cookie := loginAs(t, router, "ADMIN")

	w := postForm(router, "/events/create", url.Values{"title": {"Jazz Night"}, "price": {"-1"}}, cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "err:Date is required;")
	assert.Contains(t, body, "err:Location is required;")
	assert.Contains(t, body, "err:Price must not be negative;")
}

// ---------------- promotions ----------------

func TestShowPromotions(t *testing.T) {
	router, client := setupAdminRouter(t)
	client.On("ListEvents", mock.Anything, "tok").Return(remoteFixture(), nil).Once()
	client.On("ListEvents", mock.Anything, "tok").Return(nil, backend.ErrIncompleteResponse)
	cookie := loginAs(t, router, "ADMIN")

	assert.Equal(t, "promotions[backend-7][backend-9]", get(router, "/promotions", cookie).Body.String())

	w := get(router, "/promotions", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "promotionsfetch:"+msgIncomplete, w.Body.String())
}

func TestCreatePromotion_Success(t *testing.T) {
	router, client := setupAdminRouter(t)
	client.On("CreatePromotion", mock.Anything, "tok", backend.PromotionRequest{
		EventID: "7", Code: "HEMAT10", Discount: "10", StartDate: "2025-01-01", EndDate: "2025-02-01",
	}).Return(nil)
	client.On("ListEvents", mock.Anything, "tok").Return(nil, nil)
	cookie := loginAs(t, router, "ADMIN")

	w := postForm(router, "/promotions", promotionValues(), cookie)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/promotions", w.Header().Get("Location"))
	assert.Equal(t, "promotionsok:Promotion created successfully!;", get(router, "/promotions", sessionCookie(w)).Body.String())
	client.AssertExpectations(t)
}

func TestCreatePromotion_Failures(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"backend error message", &backend.RejectedError{Status: 400, Message: "Code already exists"}, http.StatusBadRequest, "Code already exists"},
		{"no message", &backend.RejectedError{Status: 500}, http.StatusBadRequest, msgPromotionFailed},
		{"unreachable", backend.ErrUnreachable, http.StatusServiceUnavailable, msgUnreachable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, client := setupAdminRouter(t)
			client.On("CreatePromotion", mock.Anything, "tok", mock.Anything).Return(tc.err)
			cookie := loginAs(t, router, "ADMIN")

			w := postForm(router, "/promotions", promotionValues(), cookie)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "promotionserr:"+tc.msg+";", w.Body.String())
		})
	}
}

func TestCreatePromotion_Validation(t *testing.T) {
	router, client := setupAdminRouter(t)
	cookie := loginAs(t, router, "ADMIN")
	form := promotionValues()
	form.Set("discount", "ten")
	form.Del("code")

	w := postForm(router, "/promotions", form, cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "err:Code is required;")
	assert.Contains(t, w.Body.String(), "err:Discount is not a valid number;")
	client.AssertNotCalled(t, "CreatePromotion", mock.Anything, mock.Anything, mock.Anything)
}
