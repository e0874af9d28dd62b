package db

import "gorm.io/gorm"

type Repositories struct {
	Professionals *ProfessionalRepository
	Diagnostics   *DiagnosticRepository
	ChatSessions  *ChatSessionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Professionals: NewProfessionalRepository(database),
		Diagnostics:   NewDiagnosticRepository(database),
		ChatSessions:  NewChatSessionRepository(database),
	}
}
