package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rizosfelices/rizotipo/internal/models"
	"github.com/rizosfelices/rizotipo/internal/services"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Whatsapp string `json:"whatsapp"`
}

type professionalResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`
	IsActive bool   `json:"is_active"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var request registerRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := services.ValidateRegistrationInput(request.Name, request.Email, request.Password); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	email := services.NormalizeAuthEmail(request.Email)
	exists, err := handler.authService.RegistrationEmailExists(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	professional := models.Professional{
		Email:        email,
		PasswordHash: string(passwordHash),
		Name:         request.Name,
		Whatsapp:     request.Whatsapp,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := handler.authService.CreateProfessional(&professional); err != nil {
		return apiError(c, fiber.StatusConflict, "email already registered")
	}

	return c.Status(fiber.StatusCreated).JSON(professionalResponse{
		ID:       professional.ID,
		Name:     professional.Name,
		Email:    professional.Email,
		Whatsapp: professional.Whatsapp,
		IsActive: professional.IsActive,
	})
}

type tokenRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Token exchanges form credentials for a bearer token whose subject is
// the account email.
func (handler *Handler) Token(c *fiber.Ctx) error {
	var request tokenRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(request.Username, request.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	professional, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(professional.PasswordHash), []byte(password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := handler.buildToken(&professional)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"email":        professional.Email,
		"name":         professional.Name,
	})
}

func (handler *Handler) ValidateToken(c *fiber.Ctx) error {
	claims, err := handler.parseBearerToken(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}
	return c.JSON(fiber.Map{
		"valid": true,
		"exp":   claims.ExpiresAt.Unix(),
	})
}
