package repository

import (
	"strings"

	"employee-records/internal/database/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// batchSize bounds the rows per INSERT statement inside a batch transaction
const batchSize = 100

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EmployeeFilter holds the optional predicates of a filtered listing.
// Zero values impose no constraint.
type EmployeeFilter struct {
	// Name matches employees whose name contains this substring
	Name string
	// MinSalary matches employees earning at least this amount
	MinSalary *decimal.Decimal
}

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// Ensure EmployeeRepository implements EmployeeRepositoryInterface
var _ EmployeeRepositoryInterface = (*EmployeeRepository)(nil)

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts a new employee and fills in its generated ID
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// CreateBatch inserts all employees in a single transaction
func (r *EmployeeRepository) CreateBatch(employees []models.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&employees, batchSize).Error
	})
}

// GetByID retrieves an employee by its ID
func (r *EmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves every employee in insertion order
func (r *EmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Filter retrieves the employees matching every predicate set in filter
func (r *EmployeeRepository) Filter(filter EmployeeFilter) ([]models.Employee, error) {
	var employees []models.Employee

	query := r.db.Model(&models.Employee{})
	if filter.Name != "" {
		query = query.Where(`name LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(filter.Name)+"%")
	}
	if filter.MinSalary != nil {
		query = query.Where("salary >= ?", *filter.MinSalary)
	}

	if err := query.Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Update overwrites the name, email and salary of an existing employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Model(&models.Employee{}).
		Where("id = ?", employee.ID).
		Updates(map[string]interface{}{
			"name":   employee.Name,
			"email":  employee.Email,
			"salary": employee.Salary,
		}).Error
}

// Delete deletes an employee by ID
func (r *EmployeeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}

// Count returns the number of stored employees
func (r *EmployeeRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
