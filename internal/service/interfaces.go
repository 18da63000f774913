package service

import (
	"io"

	"employee-records/internal/validation"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(in *validation.EmployeeInput) (*EmployeeResponse, error)
	GetByID(id uint) (*EmployeeResponse, error)
	GetAll() ([]EmployeeResponse, error)
	Count() (int64, error)
	Update(id uint, in *validation.EmployeeInput) (*EmployeeResponse, error)
	Delete(id uint) error
	Filter(name, salary string) ([]EmployeeResponse, error)
	ImportCSV(filename string, r io.Reader) (*ImportResult, error)
	ExportCSV(w io.Writer) error
	SalaryChart() ([]byte, error)
}
