package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/excelenergy/cms/internal/adapters/repository"
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

// BlogHandler serves blog posts and testimonials.
type BlogHandler struct {
	blog   *repository.BlogRepository
	logger *logger.Logger
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blog *repository.BlogRepository, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blog:   blog,
		logger: logger,
	}
}

// Blog posts

func (h *BlogHandler) ListBlogPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.blog.GetBlogPosts())
}

func (h *BlogHandler) CreateBlogPost(c echo.Context) error {
	var post entities.BlogPost
	if err := c.Bind(&post); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	created, err := h.blog.AddBlogPost(post)
	if err != nil {
		h.logger.Error("Create blog post failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "post": created})
}

func (h *BlogHandler) UpdateBlogPost(c echo.Context) error {
	id, patch, err := bindPatch(c)
	if err != nil {
		return err
	}

	found, err := h.blog.UpdateBlogPost(id, patch)
	return respondUpdate(c, found, err, "Post not found")
}

func (h *BlogHandler) DeleteBlogPost(c echo.Context) error {
	id, err := idQueryParam(c)
	if err != nil {
		return err
	}

	removed, err := h.blog.DeleteBlogPost(id)
	return respondUpdate(c, removed, err, "Post not found")
}

// Testimonials

func (h *BlogHandler) ListTestimonials(c echo.Context) error {
	return c.JSON(http.StatusOK, h.blog.GetTestimonials())
}

func (h *BlogHandler) CreateTestimonial(c echo.Context) error {
	var tm entities.Testimonial
	if err := c.Bind(&tm); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	created, err := h.blog.AddTestimonial(tm)
	if err != nil {
		h.logger.Error("Create testimonial failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "testimonial": created})
}

func (h *BlogHandler) UpdateTestimonial(c echo.Context) error {
	id, patch, err := bindPatch(c)
	if err != nil {
		return err
	}

	found, err := h.blog.UpdateTestimonial(id, patch)
	return respondUpdate(c, found, err, "Testimonial not found")
}

func (h *BlogHandler) DeleteTestimonial(c echo.Context) error {
	id, err := idQueryParam(c)
	if err != nil {
		return err
	}

	removed, err := h.blog.DeleteTestimonial(id)
	return respondUpdate(c, removed, err, "Testimonial not found")
}
