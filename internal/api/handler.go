package api

import (
	"time"

	"github.com/rizosfelices/rizotipo/internal/db"
	"github.com/rizosfelices/rizotipo/internal/services"
	"gorm.io/gorm"
)

const contextProfessionalKey = "current_professional"

type Handler struct {
	secretKey []byte
	tokenTTL  time.Duration

	repositories          *db.Repositories
	authService           *services.AuthService
	recommendationService *services.RecommendationService
	chatService           *services.ChatService
}

func NewHandler(database *gorm.DB, secretKey string, tokenTTL time.Duration, completer services.Completer) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:             []byte(secretKey),
		tokenTTL:              tokenTTL,
		repositories:          repositories,
		authService:           services.NewAuthService(repositories.Professionals),
		recommendationService: services.NewRecommendationService(completer),
		chatService:           services.NewChatService(repositories.ChatSessions, completer),
	}
}
