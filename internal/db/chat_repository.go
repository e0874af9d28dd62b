package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/rizosfelices/rizotipo/internal/models"
	"gorm.io/gorm"
)

type ChatSessionRepository struct {
	database *gorm.DB
}

func NewChatSessionRepository(database *gorm.DB) *ChatSessionRepository {
	return &ChatSessionRepository{database: database}
}

// FindOrCreateForProfessional returns the professional's single session,
// creating it on first use. The unique index on professional_id makes the
// find-or-create safe against a concurrent first message.
func (repo *ChatSessionRepository) FindOrCreateForProfessional(professionalID uint, title string) (models.ChatSession, error) {
	var session models.ChatSession
	err := repo.database.
		Where(models.ChatSession{ProfessionalID: professionalID}).
		Attrs(models.ChatSession{PublicID: uuid.NewString(), Title: title}).
		FirstOrCreate(&session).Error
	if err != nil {
		return models.ChatSession{}, err
	}
	return session, nil
}

func (repo *ChatSessionRepository) FindByProfessional(professionalID uint) (models.ChatSession, error) {
	var session models.ChatSession
	err := repo.database.
		Where("professional_id = ?", professionalID).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("chat_messages.id ASC")
		}).
		First(&session).Error
	if err != nil {
		return models.ChatSession{}, err
	}
	return session, nil
}

func (repo *ChatSessionRepository) ListByProfessional(professionalID uint) ([]models.ChatSession, error) {
	sessions := make([]models.ChatSession, 0)
	err := repo.database.
		Where("professional_id = ?", professionalID).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("chat_messages.id ASC")
		}).
		Order("updated_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// RecentMessages returns the trailing window of at most limit messages in
// chronological order. Storage is unbounded; the window only bounds what
// is read back for prompting.
func (repo *ChatSessionRepository) RecentMessages(sessionID uint, limit int) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0, limit)
	err := repo.database.
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for left, right := 0, len(messages)-1; left < right; left, right = left+1, right-1 {
		messages[left], messages[right] = messages[right], messages[left]
	}
	return messages, nil
}

func (repo *ChatSessionRepository) AppendMessage(sessionID uint, role string, content string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		message := models.ChatMessage{
			SessionID: sessionID,
			Role:      role,
			Content:   content,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Model(&models.ChatSession{}).
			Where("id = ?", sessionID).
			Update("updated_at", time.Now()).Error
	})
}

// DeleteByPublicID removes the session matching (sessionID, professionalID)
// together with its messages. Returns gorm.ErrRecordNotFound when no such
// pair exists.
func (repo *ChatSessionRepository) DeleteByPublicID(publicID string, professionalID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var session models.ChatSession
		err := tx.
			Where("public_id = ? AND professional_id = ?", publicID, professionalID).
			First(&session).Error
		if err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", session.ID).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ChatSession{}, session.ID).Error
	})
}
