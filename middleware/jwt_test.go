package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"certifyme/config"
	"certifyme/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"email": c.Locals("email"),
			"role":  c.Locals("role"),
		})
	})
	app.Get("/admin", middleware.JWTMiddleware, middleware.AdminOnly, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})
	return app
}

func request(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	app := setupApp(t)

	resp := request(t, app, "/protected", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareMalformedToken(t *testing.T) {
	app := setupApp(t)

	resp := request(t, app, "/protected", "not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	app := setupApp(t)

	claims := jwt.MapClaims{
		"userId": float64(1),
		"email":  "ada@example.com",
		"role":   "student",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	resp := request(t, app, "/protected", signed)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	app := setupApp(t)

	token, err := middleware.GenerateJWT(42, "Ada Lovelace", "ada@example.com", "student")
	require.NoError(t, err)

	resp := request(t, app, "/protected", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminOnlyRejectsStudent(t *testing.T) {
	app := setupApp(t)

	token, err := middleware.GenerateJWT(42, "Ada Lovelace", "ada@example.com", "student")
	require.NoError(t, err)

	resp := request(t, app, "/admin", token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	app := setupApp(t)

	token, err := middleware.GenerateJWT(1, "Admin", "admin@example.com", "admin")
	require.NoError(t, err)

	resp := request(t, app, "/admin", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
