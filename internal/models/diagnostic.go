package models

import "time"

// Intake holds the seven RizoTipo questionnaire answers plus the client's
// contact details. Answers are stored as the free text the client gave;
// no canonicalization happens before generation.
type Intake struct {
	ClientName   string `gorm:"not null"`
	Whatsapp     string `gorm:"not null"`
	Email        string `gorm:"not null"`
	Plasticity   string `gorm:"not null"`
	Permeability string `gorm:"not null"`
	Density      string `gorm:"not null"`
	Porosity     string `gorm:"not null"`
	Oiliness     string `gorm:"not null"`
	Thickness    string `gorm:"not null"`
	Texture      string `gorm:"not null"`
	Notes        string
}

// Diagnostic is one submitted intake with its generated recommendation.
// The recommendation columns stay empty until generation completes; a row
// without them is a valid terminal state when the external call failed.
type Diagnostic struct {
	ID                   uint                    `gorm:"primaryKey"`
	ProfessionalID       uint                    `gorm:"not null;index"`
	Intake               `gorm:"embedded"`
	Recommendation       *RecommendationDocument `gorm:"serializer:json"`
	RecommendationSource RecommendationSource
	CreatedAt            time.Time `gorm:"not null"`
}
