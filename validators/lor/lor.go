package lorValidator

import (
	"strings"

	"certifyme/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RequestLORRequest is the validated body for POST /api/lor/request.
type RequestLORRequest struct {
	Reason string `json:"reason" validate:"max=2000"`
}

// UpdateStatusRequest is the validated body for PUT /api/lor/requests/:id/status.
type UpdateStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	AdminNotes string `json:"adminNotes" validate:"max=2000"`
}

// IssueDirectRequest is the validated body for POST /api/lor/issue-direct.
type IssueDirectRequest struct {
	Email      string `json:"email" validate:"required,email"`
	AdminNotes string `json:"adminNotes" validate:"max=2000"`
}

// Request validator middleware
func Request() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RequestLORRequest)
		// The reason is optional; an empty body is fine.
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"reason": "Reason is too long!"})
		}

		reqData.Reason = strings.TrimSpace(reqData.Reason)
		c.Locals("validatedLORRequest", reqData)
		return c.Next()
	}
}

// UpdateStatus validator middleware
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status provided.", nil)
		}

		reqData.AdminNotes = strings.TrimSpace(reqData.AdminNotes)
		c.Locals("validatedStatusUpdate", reqData)
		return c.Next()
	}
}

// IssueDirect validator middleware
func IssueDirect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(IssueDirectRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"email": "A valid recipient email is required!"})
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		reqData.AdminNotes = strings.TrimSpace(reqData.AdminNotes)
		c.Locals("validatedIssueDirect", reqData)
		return c.Next()
	}
}
