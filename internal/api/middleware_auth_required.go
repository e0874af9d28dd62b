package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rizosfelices/rizotipo/internal/models"
	"github.com/rizosfelices/rizotipo/internal/services"
)

// AuthRequired resolves the bearer token's subject (the account email) to
// an existing professional and stores it on the request context.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	professional, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	c.Locals(contextProfessionalKey, professional)
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.Professional, error) {
	claims, err := handler.parseBearerToken(c)
	if err != nil {
		return nil, err
	}

	email := services.NormalizeAuthEmail(claims.Subject)
	if email == "" {
		return nil, errors.New("token subject is not an email")
	}

	professional, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		return nil, err
	}
	if !professional.IsActive {
		return nil, errors.New("account is inactive")
	}

	return &professional, nil
}

func (handler *Handler) parseBearerToken(c *fiber.Ctx) (*jwt.RegisteredClaims, error) {
	rawHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if rawHeader == "" {
		return nil, errors.New("missing authorization header")
	}
	scheme, rawToken, found := strings.Cut(rawHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return nil, errors.New("malformed authorization header")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(rawToken), claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("token expired")
	}

	return claims, nil
}

func (handler *Handler) buildToken(professional *models.Professional) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   professional.Email,
		ExpiresAt: jwt.NewNumericDate(now.Add(handler.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}
