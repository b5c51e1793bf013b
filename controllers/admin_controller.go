// Package controllers provides HTTP handlers for the admin pages.
// File: controllers/admin_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go-event-portal/backend"
	"go-event-portal/events"
	"go-event-portal/logger"
	"go-event-portal/models"
	"go-event-portal/session"
)

// DashboardPath is where admins land after signing in.
const DashboardPath = "/admin/dashboard"

// ---------------- Admin Controller ----------------

// AdminController serves the dashboard, event creation and promotions pages.
// Every route is expected to sit behind middleware.AdminRequired.
type AdminController struct {
	Backend backend.Client
}

// NewAdminController initializes a new instance of AdminController
func NewAdminController(client backend.Client) *AdminController {
	return &AdminController{Backend: client}
}

type eventForm struct {
	Title       string `form:"title" binding:"required"`
	Date        string `form:"date" binding:"required"`
	Location    string `form:"location" binding:"required"`
	Category    string `form:"category"`
	Description string `form:"description"`
	Price       int64  `form:"price" binding:"gte=0"`
}

type promotionForm struct {
	EventID   string `form:"eventId" binding:"required"`
	Code      string `form:"code" binding:"required"`
	Discount  string `form:"discount" binding:"required,numeric"`
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

// RedirectToDashboard sends /admin to the dashboard.
func (ac *AdminController) RedirectToDashboard(c *gin.Context) {
	c.Redirect(http.StatusFound, DashboardPath)
}

// remoteEvents fetches the backend list for the admin views.
func (ac *AdminController) remoteEvents(c *gin.Context) ([]models.CombinedEvent, error) {
	remote, err := ac.Backend.ListEvents(c.Request.Context(), bearer(c))
	if err != nil {
		return nil, err
	}
	list := make([]models.CombinedEvent, 0, len(remote))
	for _, e := range remote {
		list = append(list, events.FromRemote(e))
	}
	return list, nil
}

// Dashboard renders the backend event table.
func (ac *AdminController) Dashboard(c *gin.Context) {
	list, err := ac.remoteEvents(c)
	if err != nil {
		renderError(c, statusFor(err, http.StatusBadGateway), userMessage(err, msgEventsFailed))
		return
	}
	c.HTML(http.StatusOK, "admin_dashboard.html", page(c, gin.H{"Events": list}))
}

// ---------------- event creation ----------------

// ShowCreateEvent renders the create-event form.
func (ac *AdminController) ShowCreateEvent(c *gin.Context) {
	c.HTML(http.StatusOK, "event_create.html", page(c, gin.H{"Form": eventForm{}}))
}

// CreateEvent validates the form and acknowledges it. The backend offers no
// create endpoint, so nothing is persisted.
func (ac *AdminController) CreateEvent(c *gin.Context) {
	var form eventForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "event_create.html", page(c, gin.H{
			"FormErrors": validationMessages(err),
			"Form":       form,
		}))
		return
	}

	email, _ := session.FromContext(c).Email()
	logger.Info.Printf("CreateEvent: %s submitted event %q (%s, %s)", email, form.Title, form.Date, form.Location)
	session.Flash(c, session.FlashSuccess, "Event created!")
	c.Redirect(http.StatusFound, DashboardPath)
}

// ---------------- promotions ----------------

// ShowPromotions renders the promotion form with the backend events to pick from.
func (ac *AdminController) ShowPromotions(c *gin.Context) {
	list, err := ac.remoteEvents(c)
	data := gin.H{"Events": list, "Form": promotionForm{}}
	if err != nil {
		data["FetchError"] = userMessage(err, msgEventsFailed)
	}
	c.HTML(http.StatusOK, "promotions.html", page(c, data))
}

// CreatePromotion forwards a voucher to the backend.
func (ac *AdminController) CreatePromotion(c *gin.Context) {
	var form promotionForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "promotions.html", page(c, gin.H{
			"FormErrors": validationMessages(err),
			"Form":       form,
		}))
		return
	}

	err := ac.Backend.CreatePromotion(c.Request.Context(), bearer(c), backend.PromotionRequest{
		EventID:   form.EventID,
		Code:      strings.TrimSpace(form.Code),
		Discount:  form.Discount,
		StartDate: form.StartDate,
		EndDate:   form.EndDate,
	})
	if err != nil {
		c.HTML(statusFor(err, http.StatusBadRequest), "promotions.html", page(c, gin.H{
			"FormErrors": []string{userMessage(err, msgPromotionFailed)},
			"Form":       form,
		}))
		return
	}

	logger.Info.Printf("CreatePromotion: promotion %s created for event %s", form.Code, form.EventID)
	session.Flash(c, session.FlashSuccess, "Promotion created successfully!")
	c.Redirect(http.StatusFound, "/promotions")
}
