package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrBusy           = errors.New("ya hay una operación en curso")
	ErrDeleteDeclined = errors.New("eliminación no confirmada")
	ErrUnknownField   = errors.New("campo desconocido")
)

// FieldErrors mapea nombre de campo -> mensaje. Vacío significa válido.
type FieldErrors map[string]string

// Fields devuelve los nombres de campo con error en orden estable.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for k := range fe {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ValidationError error local de formulario; nunca llega a la red.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields.Fields() {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// GatewayError cualquier fallo de red o HTTP al hablar con el backend REST.
// StatusCode es 0 cuando la petición no obtuvo respuesta.
type GatewayError struct {
	Method     string
	Path       string
	StatusCode int
	Code       string // código del cuerpo de error del backend, si vino
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gateway %s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("gateway %s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway %s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// NotFound indica que el backend respondió 404.
func (e *GatewayError) NotFound() bool { return e.StatusCode == 404 }
