package utils

import (
	"fmt"
	"strings"

	"certifyme/config"

	qrcode "github.com/skip2/go-qrcode"
)

// VerificationURL builds the public verification link embedded in every
// certificate QR code.
func VerificationURL(certificateID string) string {
	base := strings.TrimRight(config.AppConfig.FrontendBaseURL, "/")
	return fmt.Sprintf("%s/verify/%s", base, certificateID)
}

// GenerateVerificationQR encodes the verification URL for a certificate as a
// PNG image. The QR is derived on demand and never persisted.
func GenerateVerificationQR(certificateID string) ([]byte, error) {
	png, err := qrcode.Encode(VerificationURL(certificateID), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
