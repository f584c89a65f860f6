package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/excelenergy/cms/internal/adapters/repository"
	"github.com/excelenergy/cms/internal/application/services"
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

// MessageRequest is the public contact-form payload.
type MessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type"`
}

// MarkReadRequest toggles a message's read flag.
type MarkReadRequest struct {
	ID   string `json:"id"`
	Read *bool  `json:"read"`
}

// LeadsHandler serves messages, quotes and clients.
type LeadsHandler struct {
	leads        *repository.LeadsRepository
	quoteService *services.QuoteService
	logger       *logger.Logger
}

// NewLeadsHandler creates a new leads handler
func NewLeadsHandler(leads *repository.LeadsRepository, quoteService *services.QuoteService, logger *logger.Logger) *LeadsHandler {
	return &LeadsHandler{
		leads:        leads,
		quoteService: quoteService,
		logger:       logger,
	}
}

// Messages

func (h *LeadsHandler) ListMessages(c echo.Context) error {
	return c.JSON(http.StatusOK, h.leads.GetMessages())
}

// SubmitMessage is the public contact-form endpoint.
func (h *LeadsHandler) SubmitMessage(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	msgType := req.Type
	if msgType == "" {
		msgType = "message"
	}

	created, err := h.leads.AddMessage(entities.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Type:    msgType,
	})
	if err != nil {
		h.logger.Error("Store message failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": created})
}

// MarkMessageRead flips the read flag when the body carries read.
func (h *LeadsHandler) MarkMessageRead(c echo.Context) error {
	var req MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if req.Read != nil {
		if _, err := h.leads.MarkMessageRead(req.ID); err != nil {
			h.logger.Error("Mark message read failed", "error", err, "id", req.ID)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *LeadsHandler) DeleteMessage(c echo.Context) error {
	id, err := idQueryParam(c)
	if err != nil {
		return err
	}

	removed, err := h.leads.DeleteMessage(id)
	return respondUpdate(c, removed, err, "Message not found")
}

// Quotes

func (h *LeadsHandler) ListQuotes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.leads.GetQuotes())
}

// SubmitQuote is the public endpoint storing an externally generated
// quote (pdfPath supplied by the caller).
func (h *LeadsHandler) SubmitQuote(c echo.Context) error {
	var quote entities.Quote
	if err := c.Bind(&quote); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	created, err := h.leads.AddQuote(quote)
	if err != nil {
		h.logger.Error("Store quote failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "quote": created})
}

// GenerateQuote renders the quote PDF and stores the request.
func (h *LeadsHandler) GenerateQuote(c echo.Context) error {
	var req services.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	result, err := h.quoteService.Generate(req)
	if err != nil {
		h.logger.Error("Quote generation failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate quote")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"pdf":     result.PDF,
		"quoteId": result.Quote.ID,
	})
}

// Clients

func (h *LeadsHandler) ListClients(c echo.Context) error {
	return c.JSON(http.StatusOK, h.leads.GetClients())
}

func (h *LeadsHandler) CreateClient(c echo.Context) error {
	var client entities.Client
	if err := c.Bind(&client); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	created, err := h.leads.AddClient(client)
	if err != nil {
		h.logger.Error("Create client failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "client": created})
}

func (h *LeadsHandler) UpdateClient(c echo.Context) error {
	id, patch, err := bindPatch(c)
	if err != nil {
		return err
	}

	found, err := h.leads.UpdateClient(id, patch)
	return respondUpdate(c, found, err, "Client not found")
}

func (h *LeadsHandler) DeleteClient(c echo.Context) error {
	id, err := idQueryParam(c)
	if err != nil {
		return err
	}

	removed, err := h.leads.DeleteClient(id)
	return respondUpdate(c, removed, err, "Client not found")
}
