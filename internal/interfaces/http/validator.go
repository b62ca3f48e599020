package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; validator es seguro para uso concurrente.
var validate = validator.New()

// validationMessage arma un mensaje legible a partir de los campos que fallaron.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return "entrada inválida"
	}
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return "campos inválidos: " + strings.Join(fields, ", ")
}
