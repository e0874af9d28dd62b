package db

import (
	"github.com/rizosfelices/rizotipo/internal/models"
	"gorm.io/gorm"
)

type ProfessionalRepository struct {
	database *gorm.DB
}

func NewProfessionalRepository(database *gorm.DB) *ProfessionalRepository {
	return &ProfessionalRepository{database: database}
}

func (repo *ProfessionalRepository) FindByID(professionalID uint) (models.Professional, error) {
	var professional models.Professional
	if err := repo.database.First(&professional, professionalID).Error; err != nil {
		return models.Professional{}, err
	}
	return professional, nil
}

func (repo *ProfessionalRepository) FindByNormalizedEmail(email string) (models.Professional, error) {
	var professional models.Professional
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&professional).Error; err != nil {
		return models.Professional{}, err
	}
	return professional, nil
}

func (repo *ProfessionalRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Professional{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ProfessionalRepository) Create(professional *models.Professional) error {
	return repo.database.Create(professional).Error
}
