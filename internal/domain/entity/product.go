package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// CategoryID es una referencia opcional; el cliente no garantiza que exista.
type Product struct {
	ID         ID              `json:"id,omitempty"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"` // precio unitario
	CategoryID ID              `json:"categoryId,omitempty"`
	CreatedAt  time.Time       `json:"-"`
	UpdatedAt  time.Time       `json:"-"`
}

// Key devuelve el identificador usado por los stores en memoria.
func (p Product) Key() ID { return p.ID }
