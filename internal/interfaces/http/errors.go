package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/dto"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
)

// localCause clave de c.Locals con el error interno que RequestLogger registra.
const localCause = "error_cause"

// Códigos de error de la API.
const (
	CodeInvalidBody = "INVALID_BODY"
	CodeValidation  = "VALIDATION"
	CodeNotFound    = "NOT_FOUND"
	CodeDuplicate   = "DUPLICATE"
	CodeInternal    = "INTERNAL"
)

// respondError traduce un error de dominio a la respuesta HTTP. notFound es el mensaje del 404.
func respondError(c *fiber.Ctx, err error, notFound string) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    CodeValidation,
			Message: "datos inválidos",
			Fields:  vErr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: notFound})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeDuplicate, Message: "recurso duplicado"})
	default:
		// El detalle (SQL, driver) queda en el log de la petición, no en la respuesta.
		c.Locals(localCause, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "error interno del servidor"})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}
