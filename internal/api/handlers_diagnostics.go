package api

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rizosfelices/rizotipo/internal/models"
	"github.com/rizosfelices/rizotipo/internal/services"
)

type diagnosticRequest struct {
	Nombre        string `json:"nombre"`
	Whatsapp      string `json:"whatsapp"`
	Correo        string `json:"correo"`
	Plasticidad   string `json:"plasticidad"`
	Permeabilidad string `json:"permeabilidad"`
	Densidad      string `json:"densidad"`
	Porosidad     string `json:"porosidad"`
	Oleosidad     string `json:"oleosidad"`
	Grosor        string `json:"grosor"`
	Textura       string `json:"textura"`
	Notas         string `json:"notas"`
}

func (request diagnosticRequest) intake() models.Intake {
	return models.Intake{
		ClientName:   request.Nombre,
		Whatsapp:     request.Whatsapp,
		Email:        request.Correo,
		Plasticity:   request.Plasticidad,
		Permeability: request.Permeabilidad,
		Density:      request.Densidad,
		Porosity:     request.Porosidad,
		Oiliness:     request.Oleosidad,
		Thickness:    request.Grosor,
		Texture:      request.Textura,
		Notes:        request.Notas,
	}
}

type diagnosticResponse struct {
	ID              uint      `json:"id"`
	ProfessionalID  uint      `json:"professional_id"`
	Nombre          string    `json:"nombre"`
	Whatsapp        string    `json:"whatsapp"`
	Correo          string    `json:"correo"`
	Plasticidad     string    `json:"plasticidad"`
	Permeabilidad   string    `json:"permeabilidad"`
	Densidad        string    `json:"densidad"`
	Porosidad       string    `json:"porosidad"`
	Oleosidad       string    `json:"oleosidad"`
	Grosor          string    `json:"grosor"`
	Textura         string    `json:"textura"`
	Notas           string    `json:"notas,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	ResultadoAgente *string   `json:"resultado_agente,omitempty"`
}

func buildDiagnosticResponse(diagnostic models.Diagnostic) (diagnosticResponse, error) {
	response := diagnosticResponse{
		ID:             diagnostic.ID,
		ProfessionalID: diagnostic.ProfessionalID,
		Nombre:         diagnostic.ClientName,
		Whatsapp:       diagnostic.Whatsapp,
		Correo:         diagnostic.Email,
		Plasticidad:    diagnostic.Plasticity,
		Permeabilidad:  diagnostic.Permeability,
		Densidad:       diagnostic.Density,
		Porosidad:      diagnostic.Porosity,
		Oleosidad:      diagnostic.Oiliness,
		Grosor:         diagnostic.Thickness,
		Textura:        diagnostic.Texture,
		Notas:          diagnostic.Notes,
		CreatedAt:      diagnostic.CreatedAt,
	}
	if diagnostic.Recommendation != nil {
		serialized, err := diagnostic.Recommendation.Serialize()
		if err != nil {
			return diagnosticResponse{}, err
		}
		response.ResultadoAgente = &serialized
	}
	return response, nil
}

// CreateDiagnostic persists the intake, generates the recommendation and
// enriches the stored record. The write is two-phase; when generation
// fails the bare record stays behind and remains readable.
func (handler *Handler) CreateDiagnostic(c *fiber.Ctx) error {
	professional, ok := currentProfessional(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request diagnosticRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	intake := request.intake()
	if err := services.ValidateIntake(intake); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	diagnostic := models.Diagnostic{
		ProfessionalID: professional.ID,
		Intake:         intake,
		CreatedAt:      time.Now(),
	}
	if err := handler.repositories.Diagnostics.Create(&diagnostic); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save diagnostic")
	}

	source, document, err := handler.recommendationService.Generate(c.Context(), intake)
	if err != nil {
		log.Printf("diagnostic %d generation failed: %v", diagnostic.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to generate diagnostic")
	}

	if err := handler.repositories.Diagnostics.SetRecommendation(diagnostic.ID, source, document); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save diagnostic result")
	}
	diagnostic.Recommendation = document
	diagnostic.RecommendationSource = source

	response, err := buildDiagnosticResponse(diagnostic)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to serialize diagnostic")
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

func (handler *Handler) GetDiagnostic(c *fiber.Ctx) error {
	professional, ok := currentProfessional(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	diagnosticID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid diagnostic id")
	}

	diagnostic, err := handler.repositories.Diagnostics.FindByIDForProfessional(uint(diagnosticID), professional.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "diagnostic not found")
	}

	response, err := buildDiagnosticResponse(diagnostic)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to serialize diagnostic")
	}
	return c.JSON(response)
}

func (handler *Handler) ListDiagnostics(c *fiber.Ctx) error {
	professional, ok := currentProfessional(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	diagnostics, err := handler.repositories.Diagnostics.ListByProfessional(professional.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load diagnostics")
	}

	responses := make([]diagnosticResponse, 0, len(diagnostics))
	for _, diagnostic := range diagnostics {
		response, err := buildDiagnosticResponse(diagnostic)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to serialize diagnostic")
		}
		responses = append(responses, response)
	}
	return c.JSON(responses)
}
