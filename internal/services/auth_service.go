package services

import "github.com/rizosfelices/rizotipo/internal/models"

type AuthProfessionalRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.Professional, error)
	FindByID(professionalID uint) (models.Professional, error)
	Create(professional *models.Professional) error
}

type AuthService struct {
	professionals AuthProfessionalRepository
}

func NewAuthService(professionals AuthProfessionalRepository) *AuthService {
	return &AuthService{professionals: professionals}
}

func (service *AuthService) RegistrationEmailExists(email string) (bool, error) {
	return service.professionals.ExistsByNormalizedEmail(email)
}

func (service *AuthService) CreateProfessional(professional *models.Professional) error {
	return service.professionals.Create(professional)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.Professional, error) {
	return service.professionals.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(professionalID uint) (models.Professional, error) {
	return service.professionals.FindByID(professionalID)
}
