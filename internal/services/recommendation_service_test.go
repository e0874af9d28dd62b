package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rizosfelices/rizotipo/internal/agent"
	"github.com/rizosfelices/rizotipo/internal/models"
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

const validModelOutput = `{
  "secciones": {
    "A": {"titulo": "Resultados del Diagnostico", "contenido": ["Plasticidad: Alta"]},
    "B": {"titulo": "Recomendaciones de Lavado", "contenido": ["Tecnica ASA"]},
    "C": {"titulo": "Tratamientos", "contenido": ["Mascarillas despues del shampoo"]},
    "D": {"titulo": "Definicion y Styling", "contenido": ["Cepillo por lineas"]},
    "E": {"titulo": "Cuidados Extra", "contenido": ["Gorro de satin"]}
  }
}`

func TestGenerate_UsesModelOutputWhenParseable(t *testing.T) {
	stub := &stubCompleter{response: validModelOutput}
	service := NewRecommendationService(stub)

	source, document, err := service.Generate(context.Background(), sampleIntake())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if source != models.RecommendationByModel {
		t.Fatalf("expected model source, got %q", source)
	}
	if document.Secciones.Lavado.Contenido[0] != "Tecnica ASA" {
		t.Fatalf("model document not preserved: %v", document.Secciones.Lavado.Contenido)
	}
}

func TestGenerate_FallsBackOnMalformedOutput(t *testing.T) {
	stub := &stubCompleter{response: "Claro! Aqui tienes tu diagnostico..."}
	service := NewRecommendationService(stub)

	intake := sampleIntake()
	source, document, err := service.Generate(context.Background(), intake)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if source != models.RecommendationByFallback {
		t.Fatalf("expected fallback source, got %q", source)
	}
	if !document.Valid() {
		t.Fatal("fallback document is invalid")
	}
	if document.Secciones.Resultados.Contenido[0] != "Plasticidad: Alta" {
		t.Fatalf("fallback did not echo answers: %v", document.Secciones.Resultados.Contenido)
	}
}

func TestGenerate_FallsBackOnWrongShape(t *testing.T) {
	stub := &stubCompleter{response: `{"resultado": "todo bien"}`}
	service := NewRecommendationService(stub)

	source, _, err := service.Generate(context.Background(), sampleIntake())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if source != models.RecommendationByFallback {
		t.Fatalf("expected fallback source, got %q", source)
	}
}

func TestGenerate_SurfacesTransportFailure(t *testing.T) {
	transportError := errors.New("quota exceeded")
	stub := &stubCompleter{err: transportError}
	service := NewRecommendationService(stub)

	_, document, err := service.Generate(context.Background(), sampleIntake())
	if !errors.Is(err, transportError) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
	if document != nil {
		t.Fatal("expected no document on transport failure")
	}
}

func TestGenerate_RequestCarriesIntakeAndJSONMode(t *testing.T) {
	stub := &stubCompleter{response: validModelOutput}
	service := NewRecommendationService(stub)

	intake := sampleIntake()
	intake.Notes = ""
	if _, _, err := service.Generate(context.Background(), intake); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(stub.requests) != 1 {
		t.Fatalf("expected 1 completion call, got %d", len(stub.requests))
	}
	request := stub.requests[0]
	if !request.JSONOnly {
		t.Fatal("expected JSON-only completion request")
	}
	if request.System != agent.DiagnosticSystemPrompt {
		t.Fatal("expected the diagnostic knowledge-base prompt")
	}
	if len(request.Turns) != 1 {
		t.Fatalf("expected a single user turn, got %d", len(request.Turns))
	}
	message := request.Turns[0].Content
	for _, fragment := range []string{
		"Cliente: Maria Lopez",
		"- Plasticidad: Alta",
		"- Textura: Rizado",
		"Notas adicionales: N/A",
	} {
		if !strings.Contains(message, fragment) {
			t.Fatalf("intake message missing %q:\n%s", fragment, message)
		}
	}
}

func TestValidateIntake_RejectsMissingAnswers(t *testing.T) {
	intake := sampleIntake()
	intake.Oiliness = "  "
	if err := ValidateIntake(intake); !errors.Is(err, ErrIntakeInvalid) {
		t.Fatalf("expected ErrIntakeInvalid, got %v", err)
	}
}

func TestValidateIntake_RejectsBadEmail(t *testing.T) {
	intake := sampleIntake()
	intake.Email = "not-an-email"
	if err := ValidateIntake(intake); !errors.Is(err, ErrIntakeInvalid) {
		t.Fatalf("expected ErrIntakeInvalid, got %v", err)
	}
}

func TestValidateIntake_AcceptsCompleteIntake(t *testing.T) {
	if err := ValidateIntake(sampleIntake()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
