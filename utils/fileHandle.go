package utils

import (
	"os"
	"path/filepath"
	"strings"

	"certifyme/config"
)

// CertificatePDFPath returns the storage path for a certificate artifact,
// keyed by certificate code.
func CertificatePDFPath(certificateID string) string {
	return filepath.Join(config.AppConfig.CertDir, certificateID+".pdf")
}

// LORPDFPath returns the storage path for an issued LOR artifact.
func LORPDFPath(filename string) string {
	return filepath.Join(config.AppConfig.LORDir, filename)
}

// WriteFile writes data to path, creating the parent directory if needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FileExists reports whether path exists as a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// SanitizeFilename flattens a display name into a filename-safe token.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return -1
	}, name)
	if name == "" {
		return "certificate"
	}
	return name
}
