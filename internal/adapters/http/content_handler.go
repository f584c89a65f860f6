package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/excelenergy/cms/internal/adapters/repository"
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

// ContentHandler serves the singleton page documents, the site
// settings and the list-replace section collections.
type ContentHandler struct {
	content  *repository.ContentRepository
	sections *repository.SectionsRepository
	logger   *logger.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(content *repository.ContentRepository, sections *repository.SectionsRepository, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{
		content:  content,
		sections: sections,
		logger:   logger,
	}
}

// Home page

func (h *ContentHandler) GetHome(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.GetHome())
}

func (h *ContentHandler) SaveHome(c echo.Context) error {
	var content entities.HomeContent
	if err := c.Bind(&content); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := h.content.SaveHome(content); err != nil {
		h.logger.Error("Save home content failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// About page

func (h *ContentHandler) GetAbout(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.GetAbout())
}

func (h *ContentHandler) SaveAbout(c echo.Context) error {
	var content entities.AboutContent
	if err := c.Bind(&content); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := h.content.SaveAbout(content); err != nil {
		h.logger.Error("Save about content failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Settings singletons

func (h *ContentHandler) GetSEO(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.GetSEOSettings())
}

func (h *ContentHandler) SaveSEO(c echo.Context) error {
	var seo entities.SEOSettings
	if err := c.Bind(&seo); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := h.content.SaveSEOSettings(seo); err != nil {
		h.logger.Error("Save SEO settings failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *ContentHandler) GetSiteSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.GetSiteSettings())
}

func (h *ContentHandler) SaveSiteSettings(c echo.Context) error {
	var settings entities.SiteSettings
	if err := c.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := h.content.SaveSiteSettings(settings); err != nil {
		h.logger.Error("Save site settings failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *ContentHandler) GetSocialMedia(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.GetSocialMedia())
}

func (h *ContentHandler) SaveSocialMedia(c echo.Context) error {
	var social entities.SocialMedia
	if err := c.Bind(&social); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := h.content.SaveSocialMedia(social); err != nil {
		h.logger.Error("Save social media failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Section collections: the entire array is replaced as sent, without
// order validation or de-duplication.

func (h *ContentHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sections.GetStats())
}

func (h *ContentHandler) SaveStats(c echo.Context) error {
	var stats []entities.Stat
	if err := c.Bind(&stats); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := h.sections.SaveStats(stats); err != nil {
		h.logger.Error("Save stats failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "savedCount": len(stats)})
}

func (h *ContentHandler) GetWhyChooseUs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sections.GetWhyChooseUs())
}

func (h *ContentHandler) SaveWhyChooseUs(c echo.Context) error {
	var items []entities.WhyChooseUs
	if err := c.Bind(&items); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := h.sections.SaveWhyChooseUs(items); err != nil {
		h.logger.Error("Save why-choose-us failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "savedCount": len(items)})
}

func (h *ContentHandler) GetSolutions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sections.GetSolutions())
}

func (h *ContentHandler) SaveSolutions(c echo.Context) error {
	var solutions []entities.Solution
	if err := c.Bind(&solutions); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := h.sections.SaveSolutions(solutions); err != nil {
		h.logger.Error("Save solutions failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "savedCount": len(solutions)})
}
