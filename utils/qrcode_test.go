package utils_test

import (
	"testing"

	"certifyme/config"
	"certifyme/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationURL(t *testing.T) {
	t.Setenv("FRONTEND_BASE_URL", "https://certs.example.edu/")
	config.LoadConfig()

	url := utils.VerificationURL("CERT-1700000000000")
	assert.Equal(t, "https://certs.example.edu/verify/CERT-1700000000000", url)
}

func TestGenerateVerificationQR(t *testing.T) {
	config.LoadConfig()

	png, err := utils.GenerateVerificationQR("CERT-1700000000000")
	require.NoError(t, err)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Ada_Lovelace", utils.SanitizeFilename("  Ada   Lovelace "))
	assert.Equal(t, "OMalley-Smith", utils.SanitizeFilename("O'Malley-Smith"))
	assert.Equal(t, "certificate", utils.SanitizeFilename("!!!"))
}
