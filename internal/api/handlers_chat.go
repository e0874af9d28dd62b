package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rizosfelices/rizotipo/internal/models"
	"github.com/rizosfelices/rizotipo/internal/services"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type chatSessionResponse struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Messages  []chatMessageResponse `json:"messages"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type chatSessionSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastMessage  *string   `json:"last_message"`
}

func (handler *Handler) Chat(c *fiber.Ctx) error {
	professional, ok := currentProfessional(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request chatRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(request.Message) == "" {
		return apiError(c, fiber.StatusBadRequest, "message is required")
	}

	sessionID, reply, err := handler.chatService.Send(c.Context(), professional.ID, request.Message)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate reply")
	}

	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"response":   reply,
	})
}

func (handler *Handler) GetSession(c *fiber.Ctx) error {
	professional, ok := currentProfessional(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, err := handler.chatService.SessionForProfessional(professional.ID)
	if errors.Is(err, services.ErrSessionNotFound) {
		return apiError(c, fiber.StatusNotFound, "chat session not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load session")
	}

	return c.JSON(buildSessionResponse(session))
}

func (handler *Handler) ListSessions(c *fiber.Ctx) error {
	professional, ok := currentProfessional(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessions, err := handler.chatService.SessionsForProfessional(professional.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load sessions")
	}

	summaries := make([]chatSessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summary := chatSessionSummary{
			ID:           session.PublicID,
			Title:        session.Title,
			MessageCount: len(session.Messages),
			CreatedAt:    session.CreatedAt,
			UpdatedAt:    session.UpdatedAt,
		}
		if len(session.Messages) > 0 {
			last := session.Messages[len(session.Messages)-1].Content
			summary.LastMessage = &last
		}
		summaries = append(summaries, summary)
	}
	return c.JSON(summaries)
}

func (handler *Handler) DeleteSession(c *fiber.Ctx) error {
	professional, ok := currentProfessional(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	err := handler.chatService.DeleteSession(c.Params("id"), professional.ID)
	if errors.Is(err, services.ErrSessionNotFound) {
		return apiError(c, fiber.StatusNotFound, "chat session not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete session")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func buildSessionResponse(session models.ChatSession) chatSessionResponse {
	messages := make([]chatMessageResponse, 0, len(session.Messages))
	for _, message := range session.Messages {
		messages = append(messages, chatMessageResponse{
			Role:      message.Role,
			Content:   message.Content,
			Timestamp: message.CreatedAt,
		})
	}
	return chatSessionResponse{
		ID:        session.PublicID,
		Title:     session.Title,
		Messages:  messages,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}
