package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rizosfelices/rizotipo/internal/agent"
	"github.com/rizosfelices/rizotipo/internal/models"
)

const (
	diagnosticTemperature = 0.7
	diagnosticMaxTokens   = 800
)

var ErrIntakeInvalid = errors.New("intake invalid")

// ValidateIntake rejects incomplete questionnaires before any external
// call is made.
func ValidateIntake(intake models.Intake) error {
	if strings.TrimSpace(intake.ClientName) == "" {
		return fmt.Errorf("%w: nombre is required", ErrIntakeInvalid)
	}
	if NormalizeAuthEmail(intake.Email) == "" {
		return fmt.Errorf("%w: correo is invalid", ErrIntakeInvalid)
	}
	answers := map[string]string{
		"plasticidad":   intake.Plasticity,
		"permeabilidad": intake.Permeability,
		"densidad":      intake.Density,
		"porosidad":     intake.Porosity,
		"oleosidad":     intake.Oiliness,
		"grosor":        intake.Thickness,
		"textura":       intake.Texture,
	}
	for field, answer := range answers {
		if strings.TrimSpace(answer) == "" {
			return fmt.Errorf("%w: %s is required", ErrIntakeInvalid, field)
		}
	}
	return nil
}

// RecommendationService builds the diagnostic prompt, delegates to the
// external model and repairs unusable output through the fallback engine.
// It is a pure function of the intake plus the external call; persistence
// belongs to the caller.
type RecommendationService struct {
	completer Completer
}

func NewRecommendationService(completer Completer) *RecommendationService {
	return &RecommendationService{completer: completer}
}

// Generate returns a recommendation for the intake. A transport, auth or
// quota failure of the external call aborts the whole generation; only
// output that cannot be parsed into the five-section document falls back
// to the deterministic engine, so a successful return always carries a
// valid document.
func (service *RecommendationService) Generate(ctx context.Context, intake models.Intake) (models.RecommendationSource, *models.RecommendationDocument, error) {
	raw, err := service.completer.Complete(ctx, agent.Request{
		System:      agent.DiagnosticSystemPrompt,
		Turns:       []agent.Turn{{Role: models.RoleUser, Content: buildIntakeMessage(intake)}},
		Temperature: diagnosticTemperature,
		MaxTokens:   diagnosticMaxTokens,
		JSONOnly:    true,
	})
	if err != nil {
		return "", nil, fmt.Errorf("generate recommendation: %w", err)
	}

	if document, ok := parseRecommendationDocument(raw); ok {
		return models.RecommendationByModel, document, nil
	}

	document := FallbackRecommendation(intake)
	return models.RecommendationByFallback, &document, nil
}

func buildIntakeMessage(intake models.Intake) string {
	notes := strings.TrimSpace(intake.Notes)
	if notes == "" {
		notes = "N/A"
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "Cliente: %s\n", intake.ClientName)
	fmt.Fprintf(&builder, "WhatsApp: %s\n", intake.Whatsapp)
	fmt.Fprintf(&builder, "Correo: %s\n\n", intake.Email)
	builder.WriteString("Respuestas del diagnostico:\n")
	fmt.Fprintf(&builder, "- Plasticidad: %s\n", intake.Plasticity)
	fmt.Fprintf(&builder, "- Permeabilidad: %s\n", intake.Permeability)
	fmt.Fprintf(&builder, "- Densidad: %s\n", intake.Density)
	fmt.Fprintf(&builder, "- Porosidad: %s\n", intake.Porosity)
	fmt.Fprintf(&builder, "- Oleosidad: %s\n", intake.Oiliness)
	fmt.Fprintf(&builder, "- Grosor: %s\n", intake.Thickness)
	fmt.Fprintf(&builder, "- Textura: %s\n\n", intake.Texture)
	fmt.Fprintf(&builder, "Notas adicionales: %s\n\n", notes)
	builder.WriteString("IMPORTANTE: Genera SOLO un objeto JSON valido con la estructura del ejemplo, sin texto adicional.")
	return builder.String()
}

func parseRecommendationDocument(raw string) (*models.RecommendationDocument, bool) {
	var document models.RecommendationDocument
	if err := json.Unmarshal([]byte(raw), &document); err != nil {
		return nil, false
	}
	if !document.Valid() {
		return nil, false
	}
	return &document, true
}
