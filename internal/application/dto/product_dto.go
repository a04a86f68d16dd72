package dto

import (
	"time"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o actualizar un producto (POST y PUT usan el mismo cuerpo).
type ProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Quantity   int             `json:"quantity" validate:"gt=0"`
	Price      decimal.Decimal `json:"price"`
	CategoryID entity.ID       `json:"categoryId,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         entity.ID       `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	CategoryID entity.ID       `json:"categoryId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
