package dto

import (
	"time"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
)

// CategoryRequest entrada para crear o actualizar una categoría (POST y PUT usan el mismo cuerpo).
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          entity.ID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
