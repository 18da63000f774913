package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"employee-records/internal/chart"
	apperrors "employee-records/internal/errors"
	"employee-records/internal/logger"
	"employee-records/internal/service"
	"employee-records/internal/validation"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	employeePagePath = "/employee"

	noticeAdded    = "Added Employee Successfully"
	noticeUpdated  = "Updated Employee Successfully"
	noticeNotFound = "Employee not found"

	maxRejectedNotices = 5
)

// PageHandler serves the HTML form pages
type PageHandler struct {
	service        service.EmployeeServiceInterface
	maxUploadBytes int64
}

// NewPageHandler creates a new page handler
func NewPageHandler(service service.EmployeeServiceInterface, maxUploadBytes int64) *PageHandler {
	return &PageHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// employeeForm echoes submitted or stored values back into the form
type employeeForm struct {
	ID     uint
	Name   string
	Email  string
	Salary string
}

type employeePage struct {
	Title        string
	Flashes      []string
	Employees    []service.EmployeeResponse
	Form         employeeForm
	FormErrors   map[string]string
	Action       string
	FilterName   string
	FilterSalary string
}

func addFlash(c *gin.Context, messages ...string) {
	session := sessions.Default(c)
	for _, m := range messages {
		session.AddFlash(m)
	}
	if err := session.Save(); err != nil {
		logger.WithContext(c).WithError(err).Warn("failed to save flash messages")
	}
}

func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		logger.WithContext(c).WithError(err).Warn("failed to clear flash messages")
	}

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		out = append(out, fmt.Sprint(f))
	}
	return out
}

func fieldMessages(errs apperrors.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, seen := out[e.Field]; !seen {
			out[e.Field] = e.Message
		}
	}
	return out
}

func (h *PageHandler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": message,
	})
}

func (h *PageHandler) internalError(c *gin.Context, err error, action string) {
	logger.WithContext(c).WithError(err).Error(action)
	h.renderError(c, http.StatusInternalServerError, action)
}

// renderEmployees renders the list page. A nil list loads every employee.
func (h *PageHandler) renderEmployees(c *gin.Context, page employeePage) {
	if page.Employees == nil {
		employees, err := h.service.GetAll()
		if err != nil {
			h.internalError(c, err, "Failed to list employees")
			return
		}
		page.Employees = employees
	}
	if page.Title == "" {
		page.Title = "Employee"
	}
	if page.Action == "" {
		page.Action = employeePagePath
	}
	page.Flashes = append(takeFlashes(c), page.Flashes...)

	c.HTML(http.StatusOK, "employee.html", page)
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":   "Home",
		"Flashes": takeFlashes(c),
	})
}

// ListEmployees handles GET /employee
func (h *PageHandler) ListEmployees(c *gin.Context) {
	h.renderEmployees(c, employeePage{})
}

// CreateEmployee handles POST /employee
func (h *PageHandler) CreateEmployee(c *gin.Context) {
	var input validation.EmployeeInput
	// Form binding only copies values. Checks happen in the service.
	_ = c.ShouldBind(&input)

	if _, err := h.service.Create(&input); err != nil {
		if fieldErrs, ok := apperrors.AsValidationErrors(err); ok {
			h.renderEmployees(c, employeePage{
				Form:       employeeForm{Name: input.Name, Email: input.Email, Salary: string(input.Salary)},
				FormErrors: fieldMessages(fieldErrs),
			})
			return
		}
		h.internalError(c, err, "Failed to create employee")
		return
	}

	addFlash(c, noticeAdded)
	c.Redirect(http.StatusFound, employeePagePath)
}

// EditEmployee handles GET /updateEmployee/:id
func (h *PageHandler) EditEmployee(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		h.renderError(c, http.StatusNotFound, "Page not found")
		return
	}

	employee, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			addFlash(c, noticeNotFound)
			c.Redirect(http.StatusFound, employeePagePath)
			return
		}
		h.internalError(c, err, "Failed to get employee")
		return
	}

	h.renderEmployees(c, employeePage{
		Title: "Update Employee",
		Form: employeeForm{
			ID:     employee.ID,
			Name:   employee.Name,
			Email:  employee.Email,
			Salary: employee.Salary.String(),
		},
		Action: fmt.Sprintf("/updateEmployee/%d", employee.ID),
	})
}

// UpdateEmployee handles POST /updateEmployee/:id
func (h *PageHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		h.renderError(c, http.StatusNotFound, "Page not found")
		return
	}

	var input validation.EmployeeInput
	_ = c.ShouldBind(&input)

	if _, err := h.service.Update(id, &input); err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			addFlash(c, noticeNotFound)
			c.Redirect(http.StatusFound, employeePagePath)
			return
		}
		if fieldErrs, ok := apperrors.AsValidationErrors(err); ok {
			h.renderEmployees(c, employeePage{
				Title:      "Update Employee",
				Form:       employeeForm{ID: id, Name: input.Name, Email: input.Email, Salary: string(input.Salary)},
				FormErrors: fieldMessages(fieldErrs),
				Action:     fmt.Sprintf("/updateEmployee/%d", id),
			})
			return
		}
		h.internalError(c, err, "Failed to update employee")
		return
	}

	addFlash(c, noticeUpdated)
	c.Redirect(http.StatusFound, employeePagePath)
}

// DeleteEmployee handles POST /deleteEmployee/:id
func (h *PageHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		h.renderError(c, http.StatusNotFound, "Page not found")
		return
	}

	if err := h.service.Delete(id); err != nil {
		if !errors.Is(err, apperrors.ErrEmployeeNotFound) {
			h.internalError(c, err, "Failed to delete employee")
			return
		}
		addFlash(c, noticeNotFound)
	}

	c.Redirect(http.StatusFound, employeePagePath)
}

// UploadCSV handles POST /uploadCSV
func (h *PageHandler) UploadCSV(c *gin.Context) {
	back := sameOriginReferer(c)

	header, err := uploadedFile(c, h.maxUploadBytes)
	if err != nil {
		addFlash(c, uploadNotice(err))
		c.Redirect(http.StatusFound, back)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.internalError(c, err, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	result, err := h.service.ImportCSV(header.Filename, file)
	if err != nil {
		if apperrors.IsUpload(err) {
			addFlash(c, uploadNotice(err))
			c.Redirect(http.StatusFound, back)
			return
		}
		h.internalError(c, err, "Failed to import employees")
		return
	}

	addFlash(c, importNotices(result)...)
	c.Redirect(http.StatusFound, employeePagePath)
}

// importNotices summarizes an import. Rejected rows beyond maxRejectedNotices are
// collapsed into one count so the flash cookie stays within its size limit.
func importNotices(result *service.ImportResult) []string {
	notices := []string{fmt.Sprintf("Successfully added %d employees from the CSV!", result.Imported)}
	for i, rejected := range result.Rejected {
		if i == maxRejectedNotices {
			notices = append(notices, fmt.Sprintf("... and %d more lines skipped.", len(result.Rejected)-i))
			break
		}
		problems := make([]string, 0, len(rejected.Errors))
		for _, e := range rejected.Errors {
			problems = append(problems, e.Field+": "+e.Message)
		}
		notices = append(notices, fmt.Sprintf("Skipped line %d: %s", rejected.Line, strings.Join(problems, " ")))
	}
	return notices
}

// sameOriginReferer returns the path of the Referer header when it points back at
// this host, and the employee page otherwise.
func sameOriginReferer(c *gin.Context) string {
	ref, err := url.Parse(c.GetHeader("Referer"))
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") ||
		strings.HasPrefix(ref.Path, "//") || strings.HasPrefix(ref.Path, "/\\") {
		return employeePagePath
	}
	if ref.Host != "" && ref.Host != c.Request.Host {
		return employeePagePath
	}
	if ref.Scheme != "" && ref.Scheme != "http" && ref.Scheme != "https" {
		return employeePagePath
	}

	back := &url.URL{Path: ref.Path, RawQuery: ref.RawQuery}
	return back.String()
}

// Visualize handles GET /visualize
func (h *PageHandler) Visualize(c *gin.Context) {
	png, err := h.service.SalaryChart()
	if err != nil {
		h.internalError(c, err, "Failed to render salary chart")
		return
	}

	c.HTML(http.StatusOK, "visualize.html", gin.H{
		"Title":    "Visualize",
		"Flashes":  takeFlashes(c),
		"ImageSrc": template.URL("data:image/png;base64," + chart.EncodeBase64(png)),
	})
}

// Filter handles GET and POST /filter
func (h *PageHandler) Filter(c *gin.Context) {
	param := func(key string) string {
		if v, ok := c.GetPostForm(key); ok {
			return v
		}
		return c.Query(key)
	}
	name, salary := param("name"), param("salary")

	employees, err := h.service.Filter(name, salary)
	if err != nil {
		if fieldErrs, ok := apperrors.AsValidationErrors(err); ok {
			h.renderEmployees(c, employeePage{
				FilterName:   name,
				FilterSalary: salary,
				FormErrors:   map[string]string{"filter_salary": fieldErrs[0].Message},
			})
			return
		}
		h.internalError(c, err, "Failed to filter employees")
		return
	}

	h.renderEmployees(c, employeePage{
		Title:        "Filtered Employees",
		Employees:    employees,
		FilterName:   name,
		FilterSalary: salary,
	})
}
