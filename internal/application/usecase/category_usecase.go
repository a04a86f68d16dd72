package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/dto"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/repository"
	"github.com/google/uuid"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una nueva categoría con ID asignado por el servidor.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateCategory(&in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	category := &entity.Category{
		ID:          entity.ID(uuid.New().String()),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update reemplaza nombre y descripción. Devuelve domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, id entity.ID, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateCategory(&in); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría. Devuelve domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id entity.ID) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// List devuelve todas las categorías (sin paginación).
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría. Los productos que la referencian quedan sin categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, id entity.ID) error {
	return uc.repo.Delete(ctx, id)
}

func validateCategory(in *dto.CategoryRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return &domain.ValidationError{Fields: domain.FieldErrors{"name": domain.MsgRequired}}
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
