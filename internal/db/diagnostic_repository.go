package db

import (
	"github.com/rizosfelices/rizotipo/internal/models"
	"gorm.io/gorm"
)

type DiagnosticRepository struct {
	database *gorm.DB
}

func NewDiagnosticRepository(database *gorm.DB) *DiagnosticRepository {
	return &DiagnosticRepository{database: database}
}

func (repo *DiagnosticRepository) Create(diagnostic *models.Diagnostic) error {
	return repo.database.Create(diagnostic).Error
}

// SetRecommendation is the second phase of the two-phase diagnostic write.
// The row already exists; only the recommendation columns change.
func (repo *DiagnosticRepository) SetRecommendation(diagnosticID uint, source models.RecommendationSource, document *models.RecommendationDocument) error {
	return repo.database.Model(&models.Diagnostic{ID: diagnosticID}).Updates(models.Diagnostic{
		Recommendation:       document,
		RecommendationSource: source,
	}).Error
}

func (repo *DiagnosticRepository) FindByIDForProfessional(diagnosticID uint, professionalID uint) (models.Diagnostic, error) {
	var diagnostic models.Diagnostic
	if err := repo.database.
		Where("id = ? AND professional_id = ?", diagnosticID, professionalID).
		First(&diagnostic).Error; err != nil {
		return models.Diagnostic{}, err
	}
	return diagnostic, nil
}

func (repo *DiagnosticRepository) ListByProfessional(professionalID uint) ([]models.Diagnostic, error) {
	diagnostics := make([]models.Diagnostic, 0)
	if err := repo.database.
		Where("professional_id = ?", professionalID).
		Order("created_at DESC, id DESC").
		Find(&diagnostics).Error; err != nil {
		return nil, err
	}
	return diagnostics, nil
}
