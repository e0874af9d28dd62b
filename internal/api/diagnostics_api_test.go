package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rizosfelices/rizotipo/internal/models"
)

const validModelDocument = `{
  "secciones": {
    "A": {"titulo": "Resultados del Diagnostico", "contenido": ["Plasticidad: Alta"]},
    "B": {"titulo": "Recomendaciones de Lavado", "contenido": ["Tecnica ASA"]},
    "C": {"titulo": "Tratamientos", "contenido": ["Mascarillas despues del shampoo"]},
    "D": {"titulo": "Definicion y Styling", "contenido": ["Cepillo por lineas"]},
    "E": {"titulo": "Cuidados Extra", "contenido": ["Gorro de satin"]}
  }
}`

func createDiagnostic(t *testing.T, app *fiber.App, token string) map[string]any {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/diagnostics/", token, sampleDiagnosticPayload())
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create diagnostic: expected 201, got %d", response.StatusCode)
	}
	return decodeJSONMap(t, response.Body)
}

func TestCreateDiagnostic_StoresModelOutput(t *testing.T) {
	app, _ := newTestApp(t, &stubCompleter{response: validModelDocument})
	registerTestProfessional(t, app, "delcy@example.com", "rizosfelices1")
	token := obtainToken(t, app, "delcy@example.com", "rizosfelices1")

	payload := createDiagnostic(t, app, token)
	resultado, _ := payload["resultado_agente"].(string)
	if resultado == "" {
		t.Fatal("expected resultado_agente in response")
	}

	var document models.RecommendationDocument
	if err := json.Unmarshal([]byte(resultado), &document); err != nil {
		t.Fatalf("resultado_agente is not valid JSON: %v", err)
	}
	if document.Secciones.Lavado.Contenido[0] != "Tecnica ASA" {
		t.Fatalf("model document not preserved: %v", document.Secciones.Lavado.Contenido)
	}
}

func TestCreateDiagnostic_FallsBackOnMalformedModelOutput(t *testing.T) {
	app, _ := newTestApp(t, &stubCompleter{response: "Con gusto, aqui va tu diagnostico"})
	registerTestProfessional(t, app, "delcy@example.com", "rizosfelices1")
	token := obtainToken(t, app, "delcy@example.com", "rizosfelices1")

	payload := createDiagnostic(t, app, token)
	resultado, _ := payload["resultado_agente"].(string)
	if resultado == "" {
		t.Fatal("expected resultado_agente in response")
	}

	var document models.RecommendationDocument
	if err := json.Unmarshal([]byte(resultado), &document); err != nil {
		t.Fatalf("resultado_agente is not valid JSON: %v", err)
	}
	if !document.Valid() {
		t.Fatal("fallback document is invalid")
	}
	// oleosidad "Alta" selects CO-POO
	if !strings.Contains(resultado, "Tecnica CO-POO") {
		t.Fatalf("expected CO-POO wash technique in %s", resultado)
	}
	if !strings.Contains(resultado, "Plasticidad: Alta") {
		t.Fatal("fallback must echo the answers verbatim")
	}
}

func TestCreateDiagnostic_TransportFailureKeepsReadableRecord(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection refused")}
	app, _ := newTestApp(t, stub)
	registerTestProfessional(t, app, "delcy@example.com", "rizosfelices1")
	token := obtainToken(t, app, "delcy@example.com", "rizosfelices1")

	response := doJSONRequest(t, app, http.MethodPost, "/diagnostics/", token, sampleDiagnosticPayload())
	if response.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 on transport failure, got %d", response.StatusCode)
	}

	listResponse := doJSONRequest(t, app, http.MethodGet, "/diagnostics/", token, nil)
	if listResponse.StatusCode != fiber.StatusOK {
		t.Fatalf("list: expected 200, got %d", listResponse.StatusCode)
	}
	records := decodeJSONList(t, listResponse.Body)
	if len(records) != 1 {
		t.Fatalf("expected the bare record to persist, got %d records", len(records))
	}
	if _, hasResult := records[0]["resultado_agente"]; hasResult {
		t.Fatal("incomplete record must not carry resultado_agente")
	}

	recordID := records[0]["id"].(float64)
	getResponse := doJSONRequest(t, app, http.MethodGet, fmt.Sprintf("/diagnostics/%d", int(recordID)), token, nil)
	if getResponse.StatusCode != fiber.StatusOK {
		t.Fatalf("incomplete record must stay retrievable, got %d", getResponse.StatusCode)
	}
}

func TestCreateDiagnostic_RejectsIncompleteIntakeBeforeModelCall(t *testing.T) {
	stub := &stubCompleter{response: validModelDocument}
	app, _ := newTestApp(t, stub)
	registerTestProfessional(t, app, "delcy@example.com", "rizosfelices1")
	token := obtainToken(t, app, "delcy@example.com", "rizosfelices1")

	payload := sampleDiagnosticPayload()
	payload["oleosidad"] = ""
	response := doJSONRequest(t, app, http.MethodPost, "/diagnostics/", token, payload)
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
	if len(stub.requests) != 0 {
		t.Fatal("validation must reject before any external call")
	}

	listResponse := doJSONRequest(t, app, http.MethodGet, "/diagnostics/", token, nil)
	if records := decodeJSONList(t, listResponse.Body); len(records) != 0 {
		t.Fatalf("rejected intake must not persist, got %d records", len(records))
	}
}

func TestGetDiagnostic_ScopedToOwner(t *testing.T) {
	app, _ := newTestApp(t, &stubCompleter{response: validModelDocument})
	registerTestProfessional(t, app, "delcy@example.com", "rizosfelices1")
	registerTestProfessional(t, app, "otra@example.com", "rizosfelices1")
	ownerToken := obtainToken(t, app, "delcy@example.com", "rizosfelices1")
	otherToken := obtainToken(t, app, "otra@example.com", "rizosfelices1")

	payload := createDiagnostic(t, app, ownerToken)
	recordID := int(payload["id"].(float64))

	response := doJSONRequest(t, app, http.MethodGet, fmt.Sprintf("/diagnostics/%d", recordID), otherToken, nil)
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for another professional's record, got %d", response.StatusCode)
	}

	response = doJSONRequest(t, app, http.MethodGet, fmt.Sprintf("/diagnostics/%d", recordID), ownerToken, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("owner fetch: expected 200, got %d", response.StatusCode)
	}
}
