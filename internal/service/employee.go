package service

import (
	"errors"
	"fmt"
	"io"

	"employee-records/internal/chart"
	"employee-records/internal/database/models"
	apperrors "employee-records/internal/errors"
	"employee-records/internal/ingest"
	"employee-records/internal/repository"
	"employee-records/internal/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validation.Validator
}

// Ensure EmployeeService implements EmployeeServiceInterface
var _ EmployeeServiceInterface = (*EmployeeService)(nil)

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validation.Validator) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		validator: validator,
	}
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID         uint            `json:"id" example:"1"`
	Name       string          `json:"name" example:"Alice"`
	Email      string          `json:"email" example:"alice@example.com"`
	Salary     decimal.Decimal `json:"salary" swaggertype:"string" example:"50000"`
	References *string         `json:"references,omitempty"`
}

// RowError reports the validation failures of one rejected CSV row
type RowError struct {
	Line   int                         `json:"line"`
	Errors apperrors.ValidationErrors `json:"errors"`
}

// ImportResult summarizes a bulk CSV import
type ImportResult struct {
	Imported int        `json:"imported"`
	Rejected []RowError `json:"rejected"`
}

// Create validates the input and persists a new employee
func (s *EmployeeService) Create(in *validation.EmployeeInput) (*EmployeeResponse, error) {
	payload, err := s.validator.Employee(in)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:   payload.Name,
		Email:  payload.Email,
		Salary: payload.Salary,
	}
	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return toResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uint) (*EmployeeResponse, error) {
	employee, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toResponse(employee), nil
}

// GetAll retrieves every employee in insertion order
func (s *EmployeeService) GetAll() ([]EmployeeResponse, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	return toResponses(employees), nil
}

// Count returns the number of stored employees
func (s *EmployeeService) Count() (int64, error) {
	total, err := s.repo.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// Update validates the input and overwrites an existing employee's fields.
// The id and references of the record are left as they are.
func (s *EmployeeService) Update(id uint, in *validation.EmployeeInput) (*EmployeeResponse, error) {
	employee, err := s.get(id)
	if err != nil {
		return nil, err
	}

	payload, err := s.validator.Employee(in)
	if err != nil {
		return nil, err
	}

	employee.Name = payload.Name
	employee.Email = payload.Email
	employee.Salary = payload.Salary
	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return toResponse(employee), nil
}

// Delete removes an employee. A missing id reports ErrEmployeeNotFound.
func (s *EmployeeService) Delete(id uint) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// Filter lists employees whose name contains name and whose salary is at least salary.
// Empty arguments impose no constraint.
func (s *EmployeeService) Filter(name, salary string) ([]EmployeeResponse, error) {
	filter := repository.EmployeeFilter{Name: name}
	if salary != "" {
		minSalary, err := validation.ParseDecimal("salary", salary)
		if err != nil {
			fieldErrs, _ := apperrors.AsValidationErrors(err)
			return nil, fieldErrs
		}
		filter.MinSalary = &minSalary
	}

	employees, err := s.repo.Filter(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter employees: %w", err)
	}
	return toResponses(employees), nil
}

// ImportCSV parses an uploaded CSV file and stores every valid row in one batch.
// Invalid rows are reported in the result and skipped. Nothing is stored when the
// filename is rejected or the file cannot be parsed.
func (s *EmployeeService) ImportCSV(filename string, r io.Reader) (*ImportResult, error) {
	if err := ingest.CheckFilename(filename); err != nil {
		return nil, err
	}

	rows, err := ingest.ParseCSV(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Rejected: []RowError{}}
	batch := make([]models.Employee, 0, len(rows))
	for _, row := range rows {
		payload, err := s.validator.Employee(row.Input())
		if err != nil {
			fieldErrs, ok := apperrors.AsValidationErrors(err)
			if !ok {
				return nil, err
			}
			result.Rejected = append(result.Rejected, RowError{Line: row.Line, Errors: fieldErrs})
			continue
		}
		batch = append(batch, models.Employee{
			Name:   payload.Name,
			Email:  payload.Email,
			Salary: payload.Salary,
		})
	}

	if err := s.repo.CreateBatch(batch); err != nil {
		return nil, fmt.Errorf("failed to import employees: %w", err)
	}
	result.Imported = len(batch)

	return result, nil
}

// ExportCSV writes every employee as id,name,email,salary rows
func (s *EmployeeService) ExportCSV(w io.Writer) error {
	employees, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to get employees: %w", err)
	}

	rows := make([]*ingest.ExportRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, &ingest.ExportRow{
			ID:     e.ID,
			Name:   e.Name,
			Email:  e.Email,
			Salary: e.Salary.String(),
		})
	}

	if err := ingest.WriteCSV(w, rows); err != nil {
		return fmt.Errorf("failed to export employees: %w", err)
	}
	return nil
}

// SalaryChart renders the current salary of every employee as a PNG bar chart
func (s *EmployeeService) SalaryChart() ([]byte, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	bars := make([]chart.Bar, 0, len(employees))
	for _, e := range employees {
		bars = append(bars, chart.Bar{Label: e.Name, Value: e.Salary.InexactFloat64()})
	}

	png, err := chart.SalaryBarChart(bars)
	if err != nil {
		return nil, fmt.Errorf("failed to render salary chart: %w", err)
	}
	return png, nil
}

func (s *EmployeeService) get(id uint) (*models.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func toResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:         employee.ID,
		Name:       employee.Name,
		Email:      employee.Email,
		Salary:     employee.Salary,
		References: employee.References,
	}
}

func toResponses(employees []models.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, *toResponse(&employees[i]))
	}
	return out
}
