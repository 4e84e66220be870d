package certificateRoutes

import (
	certificateControllers "certifyme/controllers/certificate"
	"certifyme/middleware"
	certificateValidators "certifyme/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(app *fiber.App) {
	certGroup := app.Group("/api/certificates")

	// Public: verification and download by certificate code
	certGroup.Get("/verify/:id", certificateControllers.VerifyCertificate)
	certGroup.Get("/download/:id", certificateControllers.DownloadCertificate)

	// Student: own certificates
	certGroup.Get("/my-certificates", middleware.JWTMiddleware, certificateControllers.GetMyCertificates)

	// Admin: issuance and listing
	certGroup.Post("/issue", middleware.JWTMiddleware, middleware.AdminOnly, certificateValidators.Issue(), certificateControllers.IssueCertificate)
	certGroup.Get("/", middleware.JWTMiddleware, middleware.AdminOnly, certificateControllers.GetAllCertificates)
}
