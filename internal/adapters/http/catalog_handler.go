package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/excelenergy/cms/internal/adapters/repository"
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

// TeamMemberRequest carries the validated create payload. Creation is
// the only entry point that re-checks required fields; updates merge
// whatever the admin screen sends.
type TeamMemberRequest struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Designation  string   `json:"designation" validate:"required"`
	Department   string   `json:"department" validate:"required"`
	Level        string   `json:"level"`
	Photo        string   `json:"photo"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone"`
	LinkedIn     string   `json:"linkedin"`
	Bio          string   `json:"bio" validate:"required"`
	Experience   string   `json:"experience" validate:"required"`
	Achievements []string `json:"achievements"`
}

// CatalogHandler serves the services, projects and team route groups.
type CatalogHandler struct {
	catalog *repository.CatalogRepository
	logger  *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *repository.CatalogRepository, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// Services

func (h *CatalogHandler) ListServices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.GetServices())
}

func (h *CatalogHandler) CreateService(c echo.Context) error {
	var service entities.Service
	if err := c.Bind(&service); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	created, err := h.catalog.AddService(service)
	if err != nil {
		h.logger.Error("Create service failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "service": created})
}

func (h *CatalogHandler) UpdateService(c echo.Context) error {
	id, patch, err := bindPatch(c)
	if err != nil {
		return err
	}

	found, err := h.catalog.UpdateService(id, patch)
	return respondUpdate(c, found, err, "Service not found")
}

func (h *CatalogHandler) DeleteService(c echo.Context) error {
	id, err := idQueryParam(c)
	if err != nil {
		return err
	}

	removed, err := h.catalog.DeleteService(id)
	return respondUpdate(c, removed, err, "Service not found")
}

// Projects

func (h *CatalogHandler) ListProjects(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.GetProjects())
}

func (h *CatalogHandler) CreateProject(c echo.Context) error {
	var project entities.Project
	if err := c.Bind(&project); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	created, err := h.catalog.AddProject(project)
	if err != nil {
		h.logger.Error("Create project failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "project": created})
}

func (h *CatalogHandler) UpdateProject(c echo.Context) error {
	id, patch, err := bindPatch(c)
	if err != nil {
		return err
	}

	found, err := h.catalog.UpdateProject(id, patch)
	return respondUpdate(c, found, err, "Project not found")
}

func (h *CatalogHandler) DeleteProject(c echo.Context) error {
	id, err := idQueryParam(c)
	if err != nil {
		return err
	}

	removed, err := h.catalog.DeleteProject(id)
	return respondUpdate(c, removed, err, "Project not found")
}

// Team members

func (h *CatalogHandler) ListTeamMembers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.GetTeamMembers())
}

func (h *CatalogHandler) CreateTeamMember(c echo.Context) error {
	var req TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	level := req.Level
	if level == "" {
		level = "employee"
	}
	achievements := req.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	member := entities.TeamMember{
		ID:           req.ID,
		Name:         req.Name,
		Designation:  req.Designation,
		Department:   req.Department,
		Level:        level,
		Photo:        req.Photo,
		Email:        req.Email,
		Phone:        req.Phone,
		LinkedIn:     req.LinkedIn,
		Bio:          req.Bio,
		Experience:   req.Experience,
		Achievements: achievements,
	}

	created, err := h.catalog.AddTeamMember(member)
	if err != nil {
		h.logger.Error("Create team member failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"member":       created,
		"totalMembers": len(h.catalog.GetTeamMembers()),
	})
}

func (h *CatalogHandler) UpdateTeamMember(c echo.Context) error {
	id, patch, err := bindPatch(c)
	if err != nil {
		return err
	}

	found, err := h.catalog.UpdateTeamMember(id, patch)
	return respondUpdate(c, found, err, "Team member not found")
}

func (h *CatalogHandler) DeleteTeamMember(c echo.Context) error {
	id, err := idQueryParam(c)
	if err != nil {
		return err
	}

	removed, err := h.catalog.DeleteTeamMember(id)
	return respondUpdate(c, removed, err, "Team member not found")
}
