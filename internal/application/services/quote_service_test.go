package services

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelenergy/cms/internal/adapters/repository"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

func TestGenerateQuoteStoresRequestAndReturnsPDF(t *testing.T) {
	store := storage.New(t.TempDir(), logger.NewNop())
	leads := repository.NewLeadsRepository(store)
	svc := NewQuoteService(leads, logger.NewNop())

	result, err := svc.Generate(QuoteRequest{
		Name:         "Amit Verma",
		Email:        "amit@example.com",
		Phone:        "+91 98765 43210",
		Company:      "Verma Industries",
		Requirements: "500 kW rooftop installation",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Quote.ID)
	assert.True(t, strings.HasPrefix(result.Quote.PDFPath, "quotes/quote-"))
	assert.True(t, strings.HasSuffix(result.Quote.PDFPath, ".pdf"))

	pdfBytes, err := base64.StdEncoding.DecodeString(result.PDF)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))

	quotes := leads.GetQuotes()
	require.Len(t, quotes, 1)
	assert.Equal(t, result.Quote.ID, quotes[0].ID)
	assert.Equal(t, "Amit Verma", quotes[0].Name)
}

func TestGenerateQuoteMinimalRequest(t *testing.T) {
	store := storage.New(t.TempDir(), logger.NewNop())
	leads := repository.NewLeadsRepository(store)
	svc := NewQuoteService(leads, logger.NewNop())

	result, err := svc.Generate(QuoteRequest{Name: "Walk-in"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.PDF)
}

func TestGenerateQuotePrepends(t *testing.T) {
	store := storage.New(t.TempDir(), logger.NewNop())
	leads := repository.NewLeadsRepository(store)
	svc := NewQuoteService(leads, logger.NewNop())

	_, err := svc.Generate(QuoteRequest{Name: "First"})
	require.NoError(t, err)
	_, err = svc.Generate(QuoteRequest{Name: "Second"})
	require.NoError(t, err)

	quotes := leads.GetQuotes()
	require.Len(t, quotes, 2)
	assert.Equal(t, "Second", quotes[0].Name)
	assert.Equal(t, "First", quotes[1].Name)
}
