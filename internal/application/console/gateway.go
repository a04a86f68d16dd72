package console

import "context"

// Gateway cliente REST externo. Cada llamada devuelve el JSON decodificado en out
// o un error (*domain.GatewayError) ante respuesta no-2xx o fallo de red.
type Gateway interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Confirm pide al usuario confirmar una acción destructiva. Debe devolver true solo
// ante un reconocimiento explícito.
type Confirm func(prompt string) bool

// Decline rechaza siempre.
func Decline(string) bool { return false }

// Accept acepta siempre (p. ej. --yes en el CLI).
func Accept(string) bool { return true }
