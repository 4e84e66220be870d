package certificateController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"certifyme/config"
	"certifyme/database"
	"certifyme/middleware"
	"certifyme/models"
	certificateRoutes "certifyme/routers/certificateRoutes"
	"certifyme/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// mailRecorder captures outgoing mail instead of delivering it.
type mailRecorder struct {
	messages []utils.Message
}

func (r *mailRecorder) Send(msg utils.Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

// setupApp wires the routes against a shared in-memory SQLite database.
// Tests in this package must use unique emails.
func setupApp(t *testing.T) (*fiber.App, *mailRecorder) {
	t.Helper()
	t.Setenv("CERT_DIR", t.TempDir())
	t.Setenv("LOR_DIR", t.TempDir())
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Certificate{}, &models.LORRequest{}))
	database.Database = database.DbInstance{Db: db}

	rec := &mailRecorder{}
	utils.Mail = rec

	app := fiber.New()
	certificateRoutes.SetupCertificateRoutes(app)
	return app, rec
}

func createUser(t *testing.T, name, email, password, role string) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hash), Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, name, email, role)
	require.NoError(t, err)
	return user, token
}

func middlewareToken(user models.User) (string, error) {
	return middleware.GenerateJWT(user.ID, user.Name, user.Email, user.Role)
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && resp.Header.Get("Content-Type") != "" && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}
