package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"ledger-analytics/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("period", validatePeriod)
	_ = v.RegisterValidation("model_kind", validateModelKind)
	_ = v.RegisterValidation("stream", validateStream)
	_ = v.RegisterValidation("view_name", validateViewName)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns the validator's error unchanged.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens validation errors into field name -> failed rule.
// Errors that are not validation errors yield nil.
func FieldErrors(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// Messages flattens validation errors into field name -> readable message.
// Errors that are not validation errors yield nil.
func Messages(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "positive_amount":
		return "must be greater than 0"
	case "currency":
		return "must be a three letter ISO 4217 currency code"
	case "period":
		return "must be a month in YYYY-MM format"
	case "model_kind":
		return "must be one of: linear, exponential, seasonal, category"
	case "stream":
		return "must be one of: income, expenses, net"
	case "view_name":
		return "must be a known aggregate view"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// validateCurrency accepts a three letter ISO 4217 code in any case
func validateCurrency(fl validator.FieldLevel) bool {
	return models.IsValidCurrencyCode(strings.ToUpper(fl.Field().String()))
}

// validatePeriod accepts YYYY-MM
func validatePeriod(fl validator.FieldLevel) bool {
	_, err := models.ParsePeriod(fl.Field().String())
	return err == nil
}

func validateModelKind(fl validator.FieldLevel) bool {
	return models.ModelKind(strings.ToLower(fl.Field().String())).IsValid()
}

func validateStream(fl validator.FieldLevel) bool {
	return models.Stream(strings.ToLower(fl.Field().String())).IsValid()
}

func validateViewName(fl validator.FieldLevel) bool {
	return models.IsValidViewName(fl.Field().String())
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}
