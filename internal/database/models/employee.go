package models

import "github.com/shopspring/decimal"

// Employee is a single employee record
type Employee struct {
	ID         uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string          `json:"name" gorm:"not null"`
	Email      string          `json:"email" gorm:"not null"`
	Salary     decimal.Decimal `json:"salary" gorm:"type:numeric;not null"`
	References *string         `json:"references,omitempty" gorm:"column:references"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employee"
}
