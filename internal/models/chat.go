package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatSession is the single rolling conversation a professional holds with
// the assistant. The unique index on ProfessionalID enforces the
// one-session-per-professional invariant at the storage level.
type ChatSession struct {
	ID             uint          `gorm:"primaryKey"`
	PublicID       string        `gorm:"uniqueIndex;not null"`
	ProfessionalID uint          `gorm:"uniqueIndex;not null"`
	Title          string        `gorm:"not null"`
	Messages       []ChatMessage `gorm:"foreignKey:SessionID"`
	CreatedAt      time.Time     `gorm:"not null"`
	UpdatedAt      time.Time     `gorm:"not null"`
}

// ChatMessage is append-only; insertion order is conversation order.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID uint      `gorm:"not null;index"`
	Role      string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
