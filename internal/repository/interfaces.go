package repository

import (
	"employee-records/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	CreateBatch(employees []models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
	Filter(filter EmployeeFilter) ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uint) error
	Count() (int64, error)
}
