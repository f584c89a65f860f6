package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/excelenergy/cms/internal/adapters/repository"
	"github.com/excelenergy/cms/internal/application/services"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

// PageViewRequest names the page whose view counter is bumped.
type PageViewRequest struct {
	Page string `json:"page" validate:"required"`
}

// AnalyticsHandler serves the visit counters and the one-time content
// seeding endpoint.
type AnalyticsHandler struct {
	analytics   *repository.AnalyticsRepository
	seedService *services.SeedService
	logger      *logger.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *repository.AnalyticsRepository, seedService *services.SeedService, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics:   analytics,
		seedService: seedService,
		logger:      logger,
	}
}

func (h *AnalyticsHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analytics.Get())
}

// IncrementVisitor is the public counter bump fired on page load.
func (h *AnalyticsHandler) IncrementVisitor(c echo.Context) error {
	if err := h.analytics.IncrementVisitor(); err != nil {
		h.logger.Error("Increment visitor failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// TrackPageView records a view for the named page.
func (h *AnalyticsHandler) TrackPageView(c echo.Context) error {
	var req PageViewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Page required")
	}

	if err := h.analytics.TrackPageView(req.Page); err != nil {
		h.logger.Error("Track page view failed", "error", err, "page", req.Page)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Init seeds starter content. Safe to call repeatedly; existing content
// is never overwritten.
func (h *AnalyticsHandler) Init(c echo.Context) error {
	if err := h.seedService.Seed(); err != nil {
		h.logger.Error("Seed failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to initialize data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Default data initialized"})
}
