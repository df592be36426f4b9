package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida de validator; thread-safe tras la construcción.
var validate = validator.New()

// validateStruct valida un request DTO con sus tags `validate` y devuelve las
// violaciones en formato legible (campo: regla). Devuelve nil si todo pasa.
func validateStruct(in any) []string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s: es requerido", field))
		case "min":
			details = append(details, fmt.Sprintf("%s: mínimo %s", field, fe.Param()))
		case "max":
			details = append(details, fmt.Sprintf("%s: máximo %s", field, fe.Param()))
		case "gt":
			details = append(details, fmt.Sprintf("%s: debe ser mayor que %s", field, fe.Param()))
		default:
			details = append(details, fmt.Sprintf("%s: regla %s no cumplida", field, fe.Tag()))
		}
	}
	return details
}
