package entity

import "time"

// Category representa una categoría de productos.
type Category struct {
	ID          ID        `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// Key devuelve el identificador usado por los stores en memoria.
func (c Category) Key() ID { return c.ID }
