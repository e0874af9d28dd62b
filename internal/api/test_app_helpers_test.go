package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rizosfelices/rizotipo/internal/agent"
	"github.com/rizosfelices/rizotipo/internal/db"
	"github.com/rizosfelices/rizotipo/internal/services"
	"gorm.io/gorm"
)

type stubCompleter struct {
	response string
	err      error
	requests []agent.Request
}

func (stub *stubCompleter) Complete(_ context.Context, request agent.Request) (string, error) {
	stub.requests = append(stub.requests, request)
	if stub.err != nil {
		return "", stub.err
	}
	return stub.response, nil
}

var _ services.Completer = (*stubCompleter)(nil)

func newTestApp(t *testing.T, completer services.Completer) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "rizotipo-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", 30*time.Minute, completer)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func registerTestProfessional(t *testing.T, app *fiber.App, email string, password string) {
	t.Helper()

	payload := map[string]string{
		"name":     "Delcy",
		"email":    email,
		"password": password,
		"whatsapp": "+57 300 000 0000",
	}
	response := doJSONRequest(t, app, http.MethodPost, "/auth/register", "", payload)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("register: expected 201, got %d", response.StatusCode)
	}
}

func obtainToken(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	form := url.Values{
		"username": {email},
		"password": {password},
	}
	request := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("token request: %v", err)
	}
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("token: expected 200, got %d", response.StatusCode)
	}

	payload := decodeJSONMap(t, response.Body)
	token, _ := payload["access_token"].(string)
	if token == "" {
		t.Fatal("token response missing access_token")
	}
	return token
}

func doJSONRequest(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSONMap(t *testing.T, body io.Reader) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	payload := map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
	return payload
}

func decodeJSONList(t *testing.T, body io.Reader) []map[string]any {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	payload := []map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
	return payload
}

func sampleDiagnosticPayload() map[string]string {
	return map[string]string{
		"nombre":        "Maria Lopez",
		"whatsapp":      "+57 301 111 1111",
		"correo":        "maria@example.com",
		"plasticidad":   "Alta",
		"permeabilidad": "Alta",
		"densidad":      "Media",
		"porosidad":     "Baja",
		"oleosidad":     "Alta",
		"grosor":        "Grueso",
		"textura":       "Rizado",
		"notas":         "cabello con color",
	}
}
