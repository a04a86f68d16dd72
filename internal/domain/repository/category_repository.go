package repository

import (
	"context"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID devuelve (nil, nil) cuando no existe; Update y Delete devuelven domain.ErrNotFound.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id entity.ID) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]*entity.Category, error)
	Delete(ctx context.Context, id entity.ID) error
}
