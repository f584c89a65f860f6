package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	httpHandlers "github.com/excelenergy/cms/internal/adapters/http"
	"github.com/excelenergy/cms/internal/adapters/repository"
	"github.com/excelenergy/cms/internal/application/services"
	"github.com/excelenergy/cms/internal/infrastructure/config"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

// Server represents the HTTP server
type Server struct {
	echo   *echo.Echo
	config *config.Config
	logger *logger.Logger
	store  *storage.Store
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance
func New(cfg *config.Config, store *storage.Store, appLogger *logger.Logger) (*Server, error) {
	e := echo.New()

	// Set custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	// Custom error handler
	e.HTTPErrorHandler = customErrorHandler(appLogger)

	// Initialize repositories
	contentRepo := repository.NewContentRepository(store)
	sectionsRepo := repository.NewSectionsRepository(store)
	catalogRepo := repository.NewCatalogRepository(store)
	leadsRepo := repository.NewLeadsRepository(store)
	blogRepo := repository.NewBlogRepository(store)
	analyticsRepo := repository.NewAnalyticsRepository(store)

	// Initialize services
	authService := services.NewAuthService(cfg.Admin, cfg.JWT, appLogger)
	quoteService := services.NewQuoteService(leadsRepo, appLogger)
	seedService := services.NewSeedService(contentRepo, catalogRepo, appLogger)

	// Initialize handlers
	authHandler := httpHandlers.NewAuthHandler(authService, cfg.App.IsProduction(), appLogger)
	contentHandler := httpHandlers.NewContentHandler(contentRepo, sectionsRepo, appLogger)
	catalogHandler := httpHandlers.NewCatalogHandler(catalogRepo, appLogger)
	leadsHandler := httpHandlers.NewLeadsHandler(leadsRepo, quoteService, appLogger)
	blogHandler := httpHandlers.NewBlogHandler(blogRepo, appLogger)
	analyticsHandler := httpHandlers.NewAnalyticsHandler(analyticsRepo, seedService, appLogger)

	server := &Server{
		echo:   e,
		config: cfg,
		logger: appLogger,
		store:  store,
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup routes
	server.setupRoutes(authHandler, contentHandler, catalogHandler, leadsHandler, blogHandler, analyticsHandler, authService)

	// Setup metrics
	if cfg.Metrics.Enabled {
		server.setupMetrics()
	}

	return server, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Logger middleware
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency_ms", float64(values.Latency.Nanoseconds()) / 1000000,
				"remote_ip", values.RemoteIP,
				"user_agent", values.UserAgent,
			}

			if values.Error != nil {
				fields = append(fields, "error", values.Error.Error())
				s.logger.Errorw("HTTP request failed", fields...)
			} else {
				s.logger.Infow("HTTP request", fields...)
			}

			return nil
		},
	}))

	// CORS middleware
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(s.config.Security.CORSAllowedOrigins, ","),
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowMethods:     []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
		AllowCredentials: true,
	}))

	// Rate limiting middleware
	s.echo.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(s.config.Security.RateLimitRequests), Burst: s.config.Security.RateLimitRequests, ExpiresIn: s.config.Security.RateLimitWindow},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			id := ctx.RealIP()
			return id, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(http.StatusForbidden, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
	}))

	// Security headers
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Timeout middleware
	s.echo.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: 30 * time.Second,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(authHandler *httpHandlers.AuthHandler, contentHandler *httpHandlers.ContentHandler, catalogHandler *httpHandlers.CatalogHandler, leadsHandler *httpHandlers.LeadsHandler, blogHandler *httpHandlers.BlogHandler, analyticsHandler *httpHandlers.AnalyticsHandler, authService *services.AuthService) {
	// Health check routes
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	admin := s.adminMiddleware(authService)

	api := s.echo.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/verify", authHandler.Verify)
	auth.POST("/logout", authHandler.Logout)

	// Page content and settings
	content := api.Group("/content")
	content.GET("/home", contentHandler.GetHome)
	content.PUT("/home", contentHandler.SaveHome, admin)
	content.GET("/about", contentHandler.GetAbout)
	content.PUT("/about", contentHandler.SaveAbout, admin)

	// Catalog collections
	content.GET("/services", catalogHandler.ListServices)
	content.POST("/services", catalogHandler.CreateService, admin)
	content.PUT("/services", catalogHandler.UpdateService, admin)
	content.DELETE("/services", catalogHandler.DeleteService, admin)

	content.GET("/projects", catalogHandler.ListProjects)
	content.POST("/projects", catalogHandler.CreateProject, admin)
	content.PUT("/projects", catalogHandler.UpdateProject, admin)
	content.DELETE("/projects", catalogHandler.DeleteProject, admin)

	content.GET("/team", catalogHandler.ListTeamMembers)
	content.POST("/team", catalogHandler.CreateTeamMember, admin)
	content.PUT("/team", catalogHandler.UpdateTeamMember, admin)
	content.DELETE("/team", catalogHandler.DeleteTeamMember, admin)

	// Section collections (whole-array replace)
	content.GET("/stats", contentHandler.GetStats)
	content.PUT("/stats", contentHandler.SaveStats, admin)
	content.GET("/why-choose-us", contentHandler.GetWhyChooseUs)
	content.PUT("/why-choose-us", contentHandler.SaveWhyChooseUs, admin)
	content.GET("/solutions", contentHandler.GetSolutions)
	content.PUT("/solutions", contentHandler.SaveSolutions, admin)

	// Blog and testimonials
	api.GET("/blog", blogHandler.ListBlogPosts)
	api.POST("/blog", blogHandler.CreateBlogPost, admin)
	api.PUT("/blog", blogHandler.UpdateBlogPost, admin)
	api.DELETE("/blog", blogHandler.DeleteBlogPost, admin)

	api.GET("/testimonials", blogHandler.ListTestimonials)
	api.POST("/testimonials", blogHandler.CreateTestimonial, admin)
	api.PUT("/testimonials", blogHandler.UpdateTestimonial, admin)
	api.DELETE("/testimonials", blogHandler.DeleteTestimonial, admin)

	// Leads
	api.GET("/messages", leadsHandler.ListMessages, admin)
	api.POST("/messages", leadsHandler.SubmitMessage)
	api.PUT("/messages", leadsHandler.MarkMessageRead, admin)
	api.DELETE("/messages", leadsHandler.DeleteMessage, admin)

	api.GET("/quotes", leadsHandler.ListQuotes, admin)
	api.POST("/quotes", leadsHandler.SubmitQuote)
	api.POST("/quotes/generate", leadsHandler.GenerateQuote)

	api.GET("/clients", leadsHandler.ListClients, admin)
	api.POST("/clients", leadsHandler.CreateClient, admin)
	api.PUT("/clients", leadsHandler.UpdateClient, admin)
	api.DELETE("/clients", leadsHandler.DeleteClient, admin)

	// Settings singletons
	api.GET("/seo", contentHandler.GetSEO)
	api.PUT("/seo", contentHandler.SaveSEO, admin)
	api.GET("/site-settings", contentHandler.GetSiteSettings)
	api.PUT("/site-settings", contentHandler.SaveSiteSettings, admin)
	api.GET("/social", contentHandler.GetSocialMedia)
	api.PUT("/social", contentHandler.SaveSocialMedia, admin)

	// Analytics
	api.GET("/analytics", analyticsHandler.Get, admin)
	api.POST("/analytics", analyticsHandler.IncrementVisitor)
	api.POST("/analytics/pageview", analyticsHandler.TrackPageView)

	// Content seeding
	api.POST("/init", analyticsHandler.Init)
}

// setupMetrics configures Prometheus metrics
func (s *Server) setupMetrics() {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(requestsTotal, requestDuration)

	// Custom metrics middleware
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			status := c.Response().Status

			requestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				fmt.Sprintf("%d", status),
			).Inc()

			requestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
			).Observe(duration.Seconds())

			return err
		}
	})

	// Metrics endpoint
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler))
}

// Health check handlers
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) detailedHealthCheck(c echo.Context) error {
	status := "ok"
	checks := make(map[string]interface{})

	// Data store health check
	if err := s.store.HealthCheck(); err != nil {
		status = "error"
		checks["storage"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		checks["storage"] = map[string]interface{}{
			"status":   "ok",
			"data_dir": s.store.Dir(),
		}
	}

	response := map[string]interface{}{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
		"version": map[string]string{
			"app": s.config.App.Version,
			"go":  "1.21",
		},
	}

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

func (s *Server) readinessCheck(c echo.Context) error {
	// Check if the data dir is writable before accepting traffic
	if err := s.store.HealthCheck(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "storage_not_ready",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.Info("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router; used in tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// customErrorHandler handles HTTP errors. Every error body uses the
// {"error": message} shape the admin panel expects.
func customErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = fmt.Sprintf("%v", he.Message)
			}
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		} else if _, ok := err.(validator.ValidationErrors); ok {
			code = http.StatusBadRequest
			msg = "Invalid data"
		}

		if code == http.StatusInternalServerError {
			logger.Error("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		// Send response
		if !c.Response().Committed {
			if c.Request().Method == echo.HEAD {
				err = c.NoContent(code)
			} else {
				err = c.JSON(code, map[string]string{"error": msg})
			}
			if err != nil {
				logger.Error("Error sending response", "error", err)
			}
		}
	}
}
