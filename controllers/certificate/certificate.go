package certificateController

import (
	"errors"
	"fmt"
	"log"
	"time"

	"certifyme/config"
	"certifyme/database"
	"certifyme/middleware"
	"certifyme/models"
	"certifyme/utils"
	certificateValidator "certifyme/validators/certificate"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IssueCertificate issues a completion certificate: the PDF and QR artifacts
// are rendered before the record is committed, so a failure partway through
// never leaves an issued-but-unrenderable certificate behind. The unique
// index on email backstops the duplicate check under concurrent issuance.
func IssueCertificate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIssue").(*certificateValidator.IssueRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// One certificate per email
	if err := db.Where("email = ?", reqData.Email).First(&models.Certificate{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A certificate has already been issued for this email!", nil)
	}

	cert := models.Certificate{
		Name:          reqData.Name,
		Email:         reqData.Email,
		CertificateID: fmt.Sprintf("CERT-%d", time.Now().UnixMilli()),
		IssueDate:     time.Now(),
		Verified:      true,
	}

	qr, err := utils.GenerateVerificationQR(cert.CertificateID)
	if err != nil {
		log.Printf("Error generating QR for %s: %v", cert.CertificateID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	pdf, err := utils.RenderCertificatePDF(&cert, qr)
	if err != nil {
		log.Printf("Error rendering certificate PDF for %s: %v", cert.CertificateID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	if err := utils.WriteFile(utils.CertificatePDFPath(cert.CertificateID), pdf); err != nil {
		log.Printf("Error storing certificate PDF for %s: %v", cert.CertificateID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	if err := db.Create(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A certificate has already been issued for this email!", nil)
		}
		log.Printf("Error saving certificate %s: %v", cert.CertificateID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	// Auto-provision a student account with the default password. Skipped
	// when the user already exists; a failure here is logged but does not
	// void the committed certificate.
	accountCreated := false
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err != nil {
		hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(config.AppConfig.DefaultStudentPassword), config.AppConfig.SaltRound)
		if hashErr != nil {
			log.Printf("Error hashing default password: %v", hashErr)
		} else {
			newUser := models.User{
				Name:     reqData.Name,
				Email:    reqData.Email,
				Password: string(hashedPassword),
				Role:     models.RoleStudent,
			}
			if createErr := db.Create(&newUser).Error; createErr != nil {
				log.Printf("Error auto-creating student account for %s: %v", reqData.Email, createErr)
			} else {
				accountCreated = true
				log.Printf("Student account created for %s with default password", reqData.Email)
			}
		}
	} else {
		log.Printf("Student account already exists for %s", reqData.Email)
	}

	if err := utils.SendCertificateEmail(cert.Name, cert.Email, cert.CertificateID, pdf, accountCreated); err != nil {
		// The certificate is committed and downloadable; delivery can be retried.
		log.Printf("Error sending certificate email to %s: %v", cert.Email, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully.", fiber.Map{
		"certificateId": cert.CertificateID,
	})
}

// GetAllCertificates lists every issued certificate, newest first.
func GetAllCertificates(c *fiber.Ctx) error {
	var certs []models.Certificate
	if err := database.Database.Db.Order("issue_date desc").Find(&certs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully.", certs)
}

// VerifyCertificate is the public verification lookup. No auth, no side effects.
func VerifyCertificate(c *fiber.Ctx) error {
	certificateID := c.Params("id")

	var cert models.Certificate
	if err := database.Database.Db.Where("certificate_id = ?", certificateID).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified.", cert)
}

// DownloadCertificate streams the certificate PDF, regenerating the artifact
// (and re-deriving the QR code) when it is missing from storage.
func DownloadCertificate(c *fiber.Ctx) error {
	certificateID := c.Params("id")

	var cert models.Certificate
	if err := database.Database.Db.Where("certificate_id = ?", certificateID).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	path := utils.CertificatePDFPath(cert.CertificateID)
	if !utils.FileExists(path) {
		log.Printf("Certificate PDF missing for %s, regenerating", cert.CertificateID)
		qr, err := utils.GenerateVerificationQR(cert.CertificateID)
		if err != nil {
			log.Printf("Error regenerating QR for %s: %v", cert.CertificateID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to regenerate certificate!", nil)
		}
		pdf, err := utils.RenderCertificatePDF(&cert, qr)
		if err != nil {
			log.Printf("Error regenerating certificate PDF for %s: %v", cert.CertificateID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to regenerate certificate!", nil)
		}
		if err := utils.WriteFile(path, pdf); err != nil {
			log.Printf("Error storing regenerated PDF for %s: %v", cert.CertificateID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to regenerate certificate!", nil)
		}
	}

	filename := fmt.Sprintf("%s_%s.pdf", utils.SanitizeFilename(cert.Name), cert.CertificateID)
	return c.Download(path, filename)
}

// GetMyCertificates lists the caller's own certificates, matched by the email
// carried in the bearer token.
func GetMyCertificates(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certs []models.Certificate
	if err := database.Database.Db.Where("email = ?", email).Order("issue_date desc").Find(&certs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully.", certs)
}
