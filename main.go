// main.go
package main

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go-event-portal/backend"
	"go-event-portal/config"
	"go-event-portal/controllers"
	"go-event-portal/logger"
	"go-event-portal/metrics"
	"go-event-portal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.InitLogger(cfg.LogDir); err != nil {
		logger.Error.Fatalf("Failed to initialise logger: %v", err)
	}
	logger.SetLogLevel(cfg.Env)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.CloudWatchEnabled {
		publisher, err := metrics.NewCloudWatchPublisher(cfg.MetricsNamespace)
		if err != nil {
			logger.Warn.Printf("CloudWatch disabled: %v", err)
		} else {
			metrics.SetPublisher(publisher)
			logger.Info.Printf("Publishing backend metrics to CloudWatch namespace %s", cfg.MetricsNamespace)
		}
	}

	client := backend.NewClient(cfg.BackendURL, backend.NewHTTPClient(cfg.BackendTimeout))
	router, err := setupRouter(cfg, client)
	if err != nil {
		logger.Error.Fatalf("Failed to set up router: %v", err)
	}

	logger.Info.Printf("Event portal listening on :%s (backend %s)", cfg.Port, cfg.BackendURL)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error.Fatalf("Failed to run server: %v", err)
	}
}

// setupRouter builds the engine with sessions, templates and every route.
func setupRouter(cfg *config.Config, client backend.Client) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))

	// Add this route for health checks
	router.GET("/health", controllers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Initialize session store
	authKey, encKey, err := cfg.SessionKeys()
	if err != nil {
		return nil, err
	}
	store := cookie.NewStore(authKey, encKey)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(cfg.SessionName, store))

	// Load HTML templates
	router.SetFuncMap(controllers.TemplateFuncs())
	router.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*.html"))

	// Serve static files under /static
	router.Static("/static", cfg.StaticDir)

	pages := controllers.NewPageController(client, cfg.ApplicationURL)
	auth := controllers.NewAuthController(client)
	admin := controllers.NewAdminController(client)
	limiter := middleware.NewLoginLimiter(cfg.LoginRateLimit, cfg.LoginBurst)

	// Public routes
	router.GET("/", pages.Root)
	router.GET("/home", pages.Home)
	router.GET("/about", pages.About)
	router.GET("/events", pages.Events)
	router.GET("/events/:id", pages.EventDetail)
	router.GET("/events/:id/qrcode", pages.EventQRCode)

	router.GET("/login", auth.ShowLogin)
	router.POST("/login", limiter.Middleware(), auth.PerformLogin)
	router.GET("/register", auth.ShowRegister)
	router.POST("/register", limiter.Middleware(), auth.PerformRegister)
	router.GET("/logout", auth.Logout)

	// Protected routes
	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/checkout/:id", pages.Checkout)
		protected.POST("/checkout/:id", pages.PayCheckout)
	}

	// Admin routes
	adminOnly := router.Group("/", middleware.AdminRequired())
	{
		adminOnly.GET("/admin", admin.RedirectToDashboard)
		adminOnly.GET("/admin/dashboard", admin.Dashboard)
		adminOnly.GET("/events/create", admin.ShowCreateEvent)
		adminOnly.POST("/events/create", admin.CreateEvent)
		adminOnly.GET("/promotions", admin.ShowPromotions)
		adminOnly.POST("/promotions", admin.CreatePromotion)
	}

	return router, nil
}
