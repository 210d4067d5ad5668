// file: internals/helpers/validation.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct roda o validator.v10 sobre o DTO e responde 422 com o mapa
// de erros por campo. Retorna (handled=true) quando a resposta já foi escrita.
func ValidateStruct(c *fiber.Ctx, s any) (bool, error) {
	err := validate.Struct(s)
	if err == nil {
		return false, nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return true, JsonError(c, fiber.StatusBadRequest, "Entrada inválida")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], validationMessage(fe))
	}
	return true, JsonValidationError(c, fieldErrors)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "formato de e-mail inválido"
	case "min":
		return "mínimo de " + fe.Param() + " caracteres"
	case "max":
		return "máximo de " + fe.Param() + " caracteres"
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "url":
		return "URL inválida"
	case "uuid":
		return "UUID inválido"
	default:
		return "formato inválido"
	}
}
