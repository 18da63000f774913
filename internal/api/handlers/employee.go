package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	apperrors "employee-records/internal/errors"
	"employee-records/internal/logger"
	"employee-records/internal/service"
	"employee-records/internal/validation"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles JSON API requests for employees
type EmployeeHandler struct {
	service        service.EmployeeServiceInterface
	maxUploadBytes int64
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service service.EmployeeServiceInterface, maxUploadBytes int64) *EmployeeHandler {
	return &EmployeeHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// ValidationErrorResponse is returned when submitted fields fail validation
type ValidationErrorResponse struct {
	Error  string                      `json:"error" example:"Validation failed"`
	Fields []*apperrors.ValidationError `json:"fields"`
}

// parseEmployeeID reads the :id path parameter
func parseEmployeeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto API status codes
func respondError(c *gin.Context, err error, action string) {
	if fieldErrs, ok := apperrors.AsValidationErrors(err); ok {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Fields: fieldErrs})
		return
	}
	if errors.Is(err, apperrors.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if apperrors.IsUpload(err) {
		status := http.StatusBadRequest
		if errors.Is(err, apperrors.ErrFileTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	logger.WithContext(c).WithError(err).Error(action)
	c.JSON(http.StatusInternalServerError, gin.H{"error": action, "details": err.Error()})
}

// ListEmployees handles GET /api/v1/employees
// @Summary List employees
// @Description List all employees, optionally filtered by a name substring and a minimum salary
// @Tags employees
// @Produce json
// @Param name query string false "Substring the employee name must contain"
// @Param salary query string false "Inclusive minimum salary"
// @Success 200 {array} service.EmployeeResponse "Successfully retrieved employees"
// @Failure 400 {object} ValidationErrorResponse "Invalid salary filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.service.Filter(c.Query("name"), c.Query("salary"))
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, employees)
}

// GetEmployee handles GET /api/v1/employees/:id
// @Summary Get employee by ID
// @Description Get a specific employee by its numeric ID
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} service.EmployeeResponse "Successfully retrieved employee"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	employee, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// CreateEmployee handles POST /api/v1/employees
// @Summary Create a new employee
// @Description Validate and store a new employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body validation.EmployeeInput true "Employee data"
// @Success 201 {object} service.EmployeeResponse "Successfully created employee"
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var input validation.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	employee, err := h.service.Create(&input)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee handles PUT /api/v1/employees/:id
// @Summary Update employee
// @Description Overwrite the name, email and salary of an existing employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param employee body validation.EmployeeInput true "Updated employee data"
// @Success 200 {object} service.EmployeeResponse "Successfully updated employee"
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var input validation.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	employee, err := h.service.Update(id, &input)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /api/v1/employees/:id
// @Summary Delete employee
// @Description Delete an employee by ID
// @Tags employees
// @Param id path int true "Employee ID"
// @Success 204 "Successfully deleted employee"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}

	c.Status(http.StatusNoContent)
}

// ImportEmployees handles POST /api/v1/employees/import
// @Summary Import employees from CSV
// @Description Upload a CSV file with name, email and salary columns. Valid rows are stored in one batch and invalid rows are reported.
// @Tags employees
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} service.ImportResult "Import summary"
// @Failure 400 {object} map[string]interface{} "Missing, unsupported or malformed file"
// @Failure 413 {object} map[string]interface{} "File too large"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/import [post]
func (h *EmployeeHandler) ImportEmployees(c *gin.Context) {
	header, err := uploadedFile(c, h.maxUploadBytes)
	if err != nil {
		respondError(c, err, "Failed to import employees")
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	result, err := h.service.ImportCSV(header.Filename, file)
	if err != nil {
		respondError(c, err, "Failed to import employees")
		return
	}

	logger.WithContext(c).WithFields(map[string]interface{}{
		"filename": header.Filename,
		"imported": result.Imported,
		"rejected": len(result.Rejected),
	}).Info("employees imported")

	c.JSON(http.StatusOK, result)
}

// ExportEmployees handles GET /api/v1/employees/export
// @Summary Export employees as CSV
// @Description Download every employee as id,name,email,salary rows
// @Tags employees
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/export [get]
func (h *EmployeeHandler) ExportEmployees(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(&buf); err != nil {
		respondError(c, err, "Failed to export employees")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="employees.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// SalaryChart handles GET /api/v1/employees/chart
// @Summary Salary bar chart
// @Description Render the salary of every employee as a PNG bar chart
// @Tags employees
// @Produce png
// @Success 200 {file} file "PNG image"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/chart [get]
func (h *EmployeeHandler) SalaryChart(c *gin.Context) {
	png, err := h.service.SalaryChart()
	if err != nil {
		respondError(c, err, "Failed to render salary chart")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
