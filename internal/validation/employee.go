// Package validation checks and coerces raw employee field values before they reach the store.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "employee-records/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

const (
	msgRequired       = "This field is required."
	msgInvalidEmail   = "Invalid email address."
	msgInvalidDecimal = "Not a valid decimal value."
)

// Bounds for decimal input
const (
	maxDecimalLength = 64
	maxDecimalScale  = 20
	maxIntegerDigits = 20
)

// NumericString is a raw numeric field. It binds from form values as text and decodes
// from either a JSON string or a JSON number, so the format check happens in validation
// instead of at decode time.
type NumericString string

// UnmarshalJSON accepts "50000", 50000 and null.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*n = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err != nil {
		return err
	}
	*n = NumericString(num.String())
	return nil
}

// EmployeeInput holds the raw submitted fields of an employee
type EmployeeInput struct {
	Name   string        `form:"name" json:"name" validate:"required,notblank"`
	Email  string        `form:"email" json:"email" validate:"required,notblank,email"`
	Salary NumericString `form:"salary" json:"salary" validate:"required,notblank,decimal" swaggertype:"string" example:"50000"`
}

// EmployeePayload is a validated employee ready for persistence
type EmployeePayload struct {
	Name   string
	Email  string
	Salary decimal.Decimal
}

// Validator wraps a go-playground validator configured with the employee rules
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator. Field names in failures follow the form tags.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("decimal", isDecimal)

	return &Validator{validate: v}
}

// Struct validates any tagged struct and reports failures as apperrors.ValidationErrors
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	if fieldErrs := translate(err); len(fieldErrs) > 0 {
		return fieldErrs
	}
	return err
}

// Employee validates raw employee fields and coerces the salary to a decimal
func (v *Validator) Employee(in *EmployeeInput) (*EmployeePayload, error) {
	if in == nil {
		return nil, apperrors.ValidationErrors{
			apperrors.NewValidationError("name", apperrors.CodeRequiredFieldMissing, msgRequired),
			apperrors.NewValidationError("email", apperrors.CodeRequiredFieldMissing, msgRequired),
			apperrors.NewValidationError("salary", apperrors.CodeRequiredFieldMissing, msgRequired),
		}
	}
	if err := v.Struct(in); err != nil {
		return nil, err
	}

	salary, err := ParseDecimal("salary", string(in.Salary))
	if err != nil {
		fieldErrs, _ := apperrors.AsValidationErrors(err)
		return nil, fieldErrs
	}

	return &EmployeePayload{
		Name:   in.Name,
		Email:  in.Email,
		Salary: salary,
	}, nil
}

// ParseDecimal coerces raw text to a decimal, reporting InvalidFormat against field.
// Values outside the bounds of a plausible salary are rejected as well.
func ParseDecimal(field, raw string) (decimal.Decimal, error) {
	d, ok := parseBoundedDecimal(raw)
	if !ok {
		return decimal.Zero, apperrors.NewValidationError(field, apperrors.CodeInvalidFormat, msgInvalidDecimal)
	}
	return d, nil
}

// parseBoundedDecimal limits the text length, the integer digits and the fractional
// digits so that formatting the value stays proportional to its input.
func parseBoundedDecimal(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxDecimalLength {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if d.IsZero() {
		return decimal.Zero, true
	}
	exp := int64(d.Exponent())
	if exp < -maxDecimalScale || int64(d.NumDigits())+exp > maxIntegerDigits {
		return decimal.Zero, false
	}
	return d, true
}

func isDecimal(fl validator.FieldLevel) bool {
	_, ok := parseBoundedDecimal(fl.Field().String())
	return ok
}

func translate(err error) apperrors.ValidationErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(apperrors.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			out = append(out, apperrors.NewValidationError(fe.Field(), apperrors.CodeRequiredFieldMissing, msgRequired))
		case "email":
			out = append(out, apperrors.NewValidationError(fe.Field(), apperrors.CodeInvalidFormat, msgInvalidEmail))
		case "decimal":
			out = append(out, apperrors.NewValidationError(fe.Field(), apperrors.CodeInvalidFormat, msgInvalidDecimal))
		default:
			out = append(out, apperrors.NewValidationError(fe.Field(), apperrors.CodeInvalidFormat,
				fmt.Sprintf("failed on the '%s' rule", fe.Tag())))
		}
	}
	return out
}
