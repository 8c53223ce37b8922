package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"renovacampo/pkg/logger"
	"renovacampo/pkg/taxid"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Messages flattens the errors for clients that expect a list of strings.
func (v ValidationErrors) Messages() []string {
	out := make([]string, 0, len(v))
	for _, err := range v {
		out = append(out, err.Error())
	}
	return out
}

// Brazilian federative units.
var states = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

func IsState(code string) bool {
	_, ok := states[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// PayloadValidator runs the struct tag rules of the entity payloads. It is
// stricter than the mapper, which accepts anything.
type PayloadValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewPayloadValidator(log *logger.Logger) *PayloadValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("taxid", validateTaxID); err != nil {
		log.Fatal("Failed to register 'taxid' validator",
			"error", err,
		)
	}
	if err := v.RegisterValidation("uf", validateState); err != nil {
		log.Fatal("Failed to register 'uf' validator",
			"error", err,
		)
	}

	log.Debug("Payload validator initialized successfully")

	return &PayloadValidator{
		validate: v,
		logger:   log,
	}
}

func validateTaxID(fl validator.FieldLevel) bool {
	return taxid.Validate(fl.Field().String())
}

func validateState(fl validator.FieldLevel) bool {
	return IsState(fl.Field().String())
}

// Validate checks payload against its validate tags and returns
// ValidationErrors when any rule fails.
func (v *PayloadValidator) Validate(payload any) error {
	if err := v.validate.Struct(payload); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *PayloadValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "taxid":
			message = fmt.Sprintf("%s must be a valid CPF or CNPJ", err.Field())
		case "uf":
			message = fmt.Sprintf("%s must be a Brazilian state code", err.Field())
		case "latitude", "longitude":
			message = fmt.Sprintf("%s must be a valid %s", err.Field(), err.Tag())
		case "datetime":
			message = fmt.Sprintf("%s must be a date in the format %s", err.Field(), err.Param())
		case "ltefield":
			message = fmt.Sprintf("%s must not exceed %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
