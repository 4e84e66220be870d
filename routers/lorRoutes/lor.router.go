package lorRoutes

import (
	lorControllers "certifyme/controllers/lor"
	"certifyme/middleware"
	lorValidators "certifyme/validators/lor"

	"github.com/gofiber/fiber/v2"
)

func SetupLORRoutes(app *fiber.App) {
	lorGroup := app.Group("/api/lor")

	// Student
	lorGroup.Post("/request", middleware.JWTMiddleware, lorValidators.Request(), lorControllers.RequestLOR)

	// Admin
	lorGroup.Get("/requests", middleware.JWTMiddleware, middleware.AdminOnly, lorControllers.GetAllLORRequests)
	lorGroup.Put("/requests/:id/status", middleware.JWTMiddleware, middleware.AdminOnly, lorValidators.UpdateStatus(), lorControllers.UpdateLORStatus)
	lorGroup.Post("/issue-direct", middleware.JWTMiddleware, middleware.AdminOnly, lorValidators.IssueDirect(), lorControllers.IssueDirectLOR)
}
