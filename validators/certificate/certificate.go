package certificateValidator

import (
	"strings"

	"certifyme/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// IssueRequest is the validated body for POST /api/certificates/issue.
type IssueRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

// Issue validator middleware
func Issue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(IssueRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errs := make(map[string]string)
		if verrs, ok := validate.Struct(reqData).(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				switch strings.ToLower(fe.Field()) {
				case "name":
					errs["name"] = "Name is required!"
				case "email":
					errs["email"] = "A valid email is required!"
				}
			}
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errs["name"] = "Name is required!"
		}
		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		c.Locals("validatedIssue", reqData)
		return c.Next()
	}
}
