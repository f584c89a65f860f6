package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/excelenergy/cms/internal/adapters/repository"
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

// QuoteRequest is the public quote-generation payload.
type QuoteRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	Requirements string `json:"requirements"`
}

// QuoteResult carries the stored quote and the rendered PDF.
type QuoteResult struct {
	Quote entities.Quote
	PDF   string // base64-encoded document
}

// QuoteService renders a quote PDF and records the request.
type QuoteService struct {
	leads  *repository.LeadsRepository
	logger *logger.Logger
}

// NewQuoteService creates a new quote service
func NewQuoteService(leads *repository.LeadsRepository, logger *logger.Logger) *QuoteService {
	return &QuoteService{
		leads:  leads,
		logger: logger,
	}
}

// Generate renders the PDF, stores the quote with its pdfPath and
// returns both. The PDF itself is handed back to the caller rather
// than written to disk.
func (s *QuoteService) Generate(req QuoteRequest) (*QuoteResult, error) {
	pdfBytes, err := renderQuotePDF(req)
	if err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}

	pdfPath := fmt.Sprintf("quotes/quote-%d.pdf", time.Now().UnixMilli())
	quote, err := s.leads.AddQuote(entities.Quote{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Requirements: req.Requirements,
		PDFPath:      pdfPath,
	})
	if err != nil {
		return nil, fmt.Errorf("store quote: %w", err)
	}

	s.logger.Info("Quote generated", "quote_id", quote.ID, "name", req.Name)

	return &QuoteResult{
		Quote: quote,
		PDF:   base64.StdEncoding.EncodeToString(pdfBytes),
	}, nil
}

func renderQuotePDF(req QuoteRequest) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 20, "Excel Energy - Solar Quote")

	pdf.SetFont("Helvetica", "", 12)
	y := 40.0
	pdf.Text(20, y, fmt.Sprintf("Generated for: %s", req.Name))
	if req.Email != "" {
		y += 10
		pdf.Text(20, y, fmt.Sprintf("Email: %s", req.Email))
	}
	if req.Phone != "" {
		y += 10
		pdf.Text(20, y, fmt.Sprintf("Phone: %s", req.Phone))
	}
	if req.Company != "" {
		y += 10
		pdf.Text(20, y, fmt.Sprintf("Company: %s", req.Company))
	}

	y += 15
	pdf.Text(20, y, "Requirements:")

	requirements := req.Requirements
	if requirements == "" {
		requirements = "N/A"
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, y+5)
	pdf.MultiCell(170, 5, requirements, "", "L", false)

	pdf.Text(20, 140, fmt.Sprintf("Generated on: %s", time.Now().Format("02/01/2006")))
	pdf.Text(20, 150, "Thank you for your interest in Excel Energy!")
	pdf.Text(20, 160, "We will contact you soon with a detailed proposal.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
