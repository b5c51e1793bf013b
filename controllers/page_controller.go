// Package controllers file: controllers/page_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go-event-portal/backend"
	"go-event-portal/events"
	"go-event-portal/logger"
	"go-event-portal/models"
	"go-event-portal/services"
	"go-event-portal/session"
)

// defaultQRCodeSize is used when /events/:id/qrcode has no size parameter.
const defaultQRCodeSize = 256

// Health answers the load balancer probe.
func Health(c *gin.Context) {
	logger.Debug.Println("Health: Health check requested")
	c.String(http.StatusOK, "OK")
}

// ---------------- Page Controller ----------------

// PageController serves the public event pages.
type PageController struct {
	Backend        backend.Client
	Lister         *events.Lister
	ApplicationURL string
	QREncode       services.QRCodeEncoder // nil uses the real encoder
}

// NewPageController wires the page handlers to the backend client.
func NewPageController(client backend.Client, applicationURL string) *PageController {
	return &PageController{
		Backend:        client,
		Lister:         events.NewLister(client),
		ApplicationURL: applicationURL,
	}
}

// Root sends visitors to the home page.
func (pc *PageController) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, session.HomePath)
}

// About renders the static about page.
func (pc *PageController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", page(c, nil))
}

// criteriaFromQuery reads the listing filters from the query string.
func criteriaFromQuery(c *gin.Context) events.Criteria {
	return events.Criteria{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Location: c.Query("location"),
	}
}

// Home renders the showcase and, for signed-in visitors, the backend events.
func (pc *PageController) Home(c *gin.Context) {
	listing, err := pc.Lister.Build(c.Request.Context(), bearer(c), events.ShowcaseOnly)
	if err != nil {
		logger.Error.Printf("Home: building listing failed: %v", err)
		renderError(c, http.StatusInternalServerError, msgInternal)
		return
	}

	criteria := criteriaFromQuery(c)
	data := gin.H{
		"Events":     events.Filter(listing.Events, criteria),
		"Total":      len(listing.Events),
		"Categories": events.Categories(listing.Events),
		"Locations":  events.Locations(listing.Events),
		"Criteria":   criteria,
	}
	if listing.FetchErr != nil {
		data["FetchError"] = userMessage(listing.FetchErr, msgEventsFailed)
	}
	c.HTML(http.StatusOK, "home.html", page(c, data))
}

// Events lists every event for signed-in visitors; guests get a login notice.
func (pc *PageController) Events(c *gin.Context) {
	listing, err := pc.Lister.Build(c.Request.Context(), bearer(c), events.LoginRequired)
	if errors.Is(err, events.ErrLoginRequired) {
		c.HTML(http.StatusOK, "events.html", page(c, gin.H{
			"LoginRequired": true,
			"Notice":        "Please log in first to see events.",
		}))
		return
	}
	if err != nil {
		renderError(c, http.StatusBadGateway, userMessage(err, msgEventsFailed))
		return
	}

	criteria := events.Criteria{Search: c.Query("q")}
	c.HTML(http.StatusOK, "events.html", page(c, gin.H{
		"Events":   events.Filter(listing.Events, criteria),
		"Total":    len(listing.Events),
		"Criteria": criteria,
	}))
}

// resolveEvent finds a showcase event by ID or fetches a backend event by
// numeric or "backend-N" ID.
func (pc *PageController) resolveEvent(c *gin.Context, displayID string) (models.CombinedEvent, error) {
	if ev, ok := events.FindShowcase(displayID); ok {
		return events.FromShowcase(ev), nil
	}
	id, ok := events.ParseBackendID(displayID)
	if !ok {
		return models.CombinedEvent{}, backend.ErrNotFound
	}
	remote, err := pc.Backend.GetEvent(c.Request.Context(), bearer(c), id)
	if err != nil {
		return models.CombinedEvent{}, err
	}
	return events.FromRemote(*remote), nil
}

// EventDetail renders a single event.
func (pc *PageController) EventDetail(c *gin.Context) {
	displayID := c.Param("id")
	ev, err := pc.resolveEvent(c, displayID)
	if errors.Is(err, backend.ErrNotFound) {
		logger.Info.Printf("EventDetail: event %q not found", displayID)
		renderError(c, http.StatusNotFound, msgEventNotFound)
		return
	}
	if err != nil {
		renderError(c, http.StatusBadGateway, userMessage(err, msgEventNotFound))
		return
	}

	c.HTML(http.StatusOK, "event_detail.html", page(c, gin.H{
		"Event":    ev,
		"ShareURL": services.EventURL(pc.ApplicationURL, ev.DisplayID),
	}))
}

// EventQRCode serves a PNG QR code linking to the event page. Only the ID
// shape is checked; the backend is not contacted.
func (pc *PageController) EventQRCode(c *gin.Context) {
	displayID := c.Param("id")
	if _, ok := events.FindShowcase(displayID); !ok {
		id, ok := events.ParseBackendID(displayID)
		if !ok {
			c.String(http.StatusNotFound, msgEventNotFound)
			return
		}
		displayID = events.BackendDisplayID(id)
	}

	size := defaultQRCodeSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.String(http.StatusBadRequest, services.ErrInvalidQRCodeSize.Error())
			return
		}
		size = n
	}

	png, err := services.GenerateEventQRCode(services.EventURL(pc.ApplicationURL, displayID), size, pc.QREncode)
	if errors.Is(err, services.ErrInvalidQRCodeSize) {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		logger.Error.Printf("EventQRCode: failed to generate QR code for %s: %v", displayID, err)
		c.String(http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ---------------- checkout ----------------

// Checkout shows the order summary for a showcase event.
func (pc *PageController) Checkout(c *gin.Context) {
	ev, ok := events.FindShowcase(c.Param("id"))
	if !ok {
		renderError(c, http.StatusNotFound, msgEventNotFound)
		return
	}
	c.HTML(http.StatusOK, "checkout.html", page(c, gin.H{"Event": events.FromShowcase(ev)}))
}

// PayCheckout confirms a dummy payment. No money moves.
func (pc *PageController) PayCheckout(c *gin.Context) {
	ev, ok := events.FindShowcase(c.Param("id"))
	if !ok {
		renderError(c, http.StatusNotFound, msgEventNotFound)
		return
	}
	email, _ := session.FromContext(c).Email()
	logger.Info.Printf("PayCheckout: dummy payment for %s by %s", ev.ID, email)

	session.Flash(c, session.FlashSuccess, "Payment successful! (Dummy)")
	c.Redirect(http.StatusFound, "/events/"+ev.ID)
}
