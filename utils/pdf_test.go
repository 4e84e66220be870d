package utils_test

import (
	"testing"
	"time"

	"certifyme/config"
	"certifyme/models"
	"certifyme/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCertificatePDF(t *testing.T) {
	config.LoadConfig()

	cert := &models.Certificate{
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		CertificateID: "CERT-1700000000000",
		IssueDate:     time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Verified:      true,
	}

	qr, err := utils.GenerateVerificationQR(cert.CertificateID)
	require.NoError(t, err)

	pdf, err := utils.RenderCertificatePDF(cert, qr)
	require.NoError(t, err)

	assert.Greater(t, len(pdf), 1000)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderLORPDF(t *testing.T) {
	config.LoadConfig()

	pdf, err := utils.RenderLORPDF("Ada Lovelace", "Top of her cohort.", time.Now())
	require.NoError(t, err)

	assert.Greater(t, len(pdf), 1000)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderLORPDFWithoutNotes(t *testing.T) {
	config.LoadConfig()

	pdf, err := utils.RenderLORPDF("Grace Hopper", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
