package domain

// Mensajes de validación compartidos por el formulario de la consola y el backend.
const (
	MsgRequired        = "es obligatorio"
	MsgPositiveInteger = "debe ser un número entero mayor que cero"
	MsgPositiveDecimal = "debe ser un valor mayor que cero"
	MsgUnknownCategory = "la categoría no existe"

	MsgQuantityTooLarge = "excede la cantidad máxima (2147483647)"
	MsgPriceScale       = "admite como máximo 2 decimales"
	MsgPriceTooLarge    = "excede el precio máximo"
)
