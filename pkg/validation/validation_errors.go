package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one user-facing message tied to a request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldLabels maps JSON field names to Spanish labels
var FieldLabels = map[string]string{
	// Contact form
	"name":    "Nombre",
	"email":   "Email",
	"phone":   "Teléfono",
	"company": "Empresa",
	"service": "Servicio",
	"budget":  "Presupuesto",
	"message": "Mensaje",
	"consent": "Autorización de datos",

	// Calculator
	"calculatorData": "Datos de la calculadora",
	"projectType":    "Tipo de proyecto",
	"pages":          "Número de páginas",
	"features":       "Funcionalidades",
	"design":         "Diseño",
	"timeline":       "Timeline",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   fieldPath(e),
			Message: formatSingleError(e),
		})
	}
	return out
}

// fieldPath drops the root struct name: "ContactRequest.email" -> "email"
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Es obligatorio", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Debe tener al menos %s caracteres", label, param)
		}
		return fmt.Sprintf("%s: Debe ser al menos %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: No puede superar %s caracteres", label, param)
		}
		return fmt.Sprintf("%s: No puede ser mayor que %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: Debe ser una de: %s", label, formatOneOfOptions(param))

	case "email":
		return fmt.Sprintf("%s: Email inválido", label)

	case "valid_phone":
		return fmt.Sprintf("%s: Debe tener al menos 10 dígitos y solo números, espacios, +, - y paréntesis", label)

	case "accepted":
		return fmt.Sprintf("%s: Debes aceptar la política de privacidad", label)

	default:
		return fmt.Sprintf("%s: Valor inválido (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}

// formatOneOfOptions formats oneof options for display
func formatOneOfOptions(param string) string {
	options := strings.Split(param, " ")
	formatted := make([]string, len(options))
	for i, opt := range options {
		formatted[i] = formatEnumValue(opt)
	}
	return strings.Join(formatted, ", ")
}

// enumLabels maps option keys to the labels shown in the forms
var enumLabels = map[string]string{
	"marketing-digital": "Marketing Digital",
	"automatizacion":    "Automatización de Procesos",
	"chatbots-ia":       "Chatbots & IA",
	"desarrollo-web":    "Desarrollo Web",
	"seo":               "SEO",
	"consultoria":       "Consultoría Integral",
	"0-1m":              "Menos de $1M COP",
	"1m-3m":             "$1M - $3M COP",
	"3m-5m":             "$3M - $5M COP",
	"5m-10m":            "$5M - $10M COP",
	"10m+":              "Más de $10M COP",
	"consultar":         "Prefiere consultarlo",
	"template":          "Plantilla",
	"custom":            "Personalizado",
	"premium":           "Premium",
	"normal":            "Normal",
	"fast":              "Rápido",
	"urgent":            "Urgente",
}

// formatEnumValue formats enum values for display
func formatEnumValue(value string) string {
	if label, ok := enumLabels[value]; ok {
		return label
	}
	return value
}
