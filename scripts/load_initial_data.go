package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"employee-records/internal/config"
	"employee-records/internal/database"
	"employee-records/internal/database/models"
	apperrors "employee-records/internal/errors"
	"employee-records/internal/validation"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EmployeeData mirrors one seeded employee. Salary stays text so it goes through the
// same validation as form and CSV input.
type EmployeeData struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Salary     string `yaml:"salary"`
	References string `yaml:"references,omitempty"`
}

// EmployeesFile is the layout of every *employees*.yaml file
type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseDriver, cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(driver, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	employees, err := loadEmployees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	v := validation.New()
	created, existing, invalid := 0, 0, 0
	for _, data := range employees {
		_, wasCreated, err := createEmployee(db, v, data)
		if err != nil {
			if apperrors.IsValidation(err) {
				log.Printf("⚠️  Skipping %q: %v", data.Name, err)
				invalid++
				continue
			}
			return err
		}
		if wasCreated {
			created++
		} else {
			existing++
		}
	}

	log.Printf("👥 Employees: %d created, %d already present, %d invalid", created, existing, invalid)
	return nil
}

func loadEmployees(dataDir string) ([]EmployeeData, error) {
	var allEmployees []EmployeeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "employees") {
			var file EmployeesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allEmployees = append(allEmployees, file.Employees...)
		}
		return nil
	})

	return allEmployees, err
}

// createEmployee validates and inserts one employee unless a record with the same
// name and email already exists, so the loader can be re-run safely.
func createEmployee(db *gorm.DB, v *validation.Validator, data EmployeeData) (*models.Employee, bool, error) {
	payload, err := v.Employee(&validation.EmployeeInput{
		Name:   data.Name,
		Email:  data.Email,
		Salary: validation.NumericString(data.Salary),
	})
	if err != nil {
		return nil, false, err
	}

	var employee models.Employee
	err = db.Where("name = ? AND email = ?", payload.Name, payload.Email).First(&employee).Error
	if err == nil {
		return &employee, false, nil // created = false (existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query employee: %w", err)
	}

	employee = models.Employee{
		Name:   payload.Name,
		Email:  payload.Email,
		Salary: payload.Salary,
	}
	if data.References != "" {
		refs := data.References
		employee.References = &refs
	}

	if err := db.Create(&employee).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, true, nil // created = true
}
