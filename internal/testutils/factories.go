package testutils

import (
	"fmt"
	"sync/atomic"

	"employee-records/internal/database/models"
	"employee-records/internal/validation"

	"github.com/shopspring/decimal"
)

var employeeSeq atomic.Int64

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values and no ID
func (f *EmployeeFactory) Create() *models.Employee {
	n := employeeSeq.Add(1)
	return &models.Employee{
		Name:   fmt.Sprintf("Employee %d", n),
		Email:  fmt.Sprintf("employee%d@example.com", n),
		Salary: decimal.NewFromInt(50000),
	}
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(name string) *models.Employee {
	e := f.Create()
	e.Name = name
	return e
}

// WithNameAndSalary sets a custom name and salary for the employee
func (f *EmployeeFactory) WithNameAndSalary(name string, salary int64) *models.Employee {
	e := f.WithName(name)
	e.Salary = decimal.NewFromInt(salary)
	return e
}

// Input creates raw form fields for an employee
func (f *EmployeeFactory) Input(name, email, salary string) *validation.EmployeeInput {
	return &validation.EmployeeInput{
		Name:   name,
		Email:  email,
		Salary: validation.NumericString(salary),
	}
}
