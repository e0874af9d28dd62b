package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rizosfelices/rizotipo/internal/agent"
	"github.com/rizosfelices/rizotipo/internal/models"
	"gorm.io/gorm"
)

const (
	// historyWindow bounds what is read back for prompting, not what is
	// stored; the transcript itself grows without limit.
	historyWindow = 10

	chatTemperature = 0.7
	chatMaxTokens   = 512

	defaultSessionTitle = "Asistente RizoTipo"
)

var ErrSessionNotFound = errors.New("chat session not found")

type ChatSessionRepository interface {
	FindOrCreateForProfessional(professionalID uint, title string) (models.ChatSession, error)
	FindByProfessional(professionalID uint) (models.ChatSession, error)
	ListByProfessional(professionalID uint) ([]models.ChatSession, error)
	RecentMessages(sessionID uint, limit int) ([]models.ChatMessage, error)
	AppendMessage(sessionID uint, role string, content string) error
	DeleteByPublicID(publicID string, professionalID uint) error
}

// ChatService maintains the single rolling conversation each professional
// holds with the assistant and delegates turn generation to the external
// model. Two concurrent sends for the same professional may interleave
// their appends; there is no per-professional serialization.
type ChatService struct {
	sessions  ChatSessionRepository
	completer Completer
}

func NewChatService(sessions ChatSessionRepository, completer Completer) *ChatService {
	return &ChatService{sessions: sessions, completer: completer}
}

// Send appends the user's message to the professional's session, asks the
// model for a reply with the trailing history window as context, appends
// the reply and returns (session public id, reply). The user turn is
// persisted before generation, so a failed model call still leaves it in
// the transcript.
func (service *ChatService) Send(ctx context.Context, professionalID uint, message string) (string, string, error) {
	session, err := service.sessions.FindOrCreateForProfessional(professionalID, defaultSessionTitle)
	if err != nil {
		return "", "", fmt.Errorf("find or create session: %w", err)
	}

	history, err := service.sessions.RecentMessages(session.ID, historyWindow)
	if err != nil {
		return "", "", fmt.Errorf("load history: %w", err)
	}

	if err := service.sessions.AppendMessage(session.ID, models.RoleUser, message); err != nil {
		return "", "", fmt.Errorf("append user message: %w", err)
	}

	turns := make([]agent.Turn, 0, len(history)+1)
	for _, previous := range history {
		turns = append(turns, agent.Turn{Role: previous.Role, Content: previous.Content})
	}
	turns = append(turns, agent.Turn{Role: models.RoleUser, Content: message})

	reply, err := service.completer.Complete(ctx, agent.Request{
		System:      agent.ChatSystemPrompt,
		Turns:       turns,
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return "", "", fmt.Errorf("generate reply: %w", err)
	}

	if err := service.sessions.AppendMessage(session.ID, models.RoleAssistant, reply); err != nil {
		return "", "", fmt.Errorf("append assistant message: %w", err)
	}

	return session.PublicID, reply, nil
}

func (service *ChatService) SessionForProfessional(professionalID uint) (models.ChatSession, error) {
	session, err := service.sessions.FindByProfessional(professionalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ChatSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.ChatSession{}, err
	}
	return session, nil
}

func (service *ChatService) SessionsForProfessional(professionalID uint) ([]models.ChatSession, error) {
	return service.sessions.ListByProfessional(professionalID)
}

func (service *ChatService) DeleteSession(publicID string, professionalID uint) error {
	err := service.sessions.DeleteByPublicID(publicID, professionalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSessionNotFound
	}
	return err
}
