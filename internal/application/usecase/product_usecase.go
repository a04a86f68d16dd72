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

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso. categories se usa para verificar la referencia opcional.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un nuevo producto con ID asignado por el servidor.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validate(ctx, &in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:         entity.ID(uuid.New().String()),
		Name:       in.Name,
		Quantity:   in.Quantity,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza todos los campos editables. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id entity.ID, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validate(ctx, &in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Quantity = in.Quantity
	product.Price = in.Price
	product.CategoryID = in.CategoryID
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id entity.ID) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos (sin paginación).
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id entity.ID) error {
	return uc.repo.Delete(ctx, id)
}

// validate aplica las mismas reglas que el formulario de la consola y además
// comprueba que la categoría referenciada exista.
func (uc *ProductUseCase) validate(ctx context.Context, in *dto.ProductRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.CategoryID = entity.ID(strings.TrimSpace(string(in.CategoryID)))

	fields := domain.FieldErrors{}
	if in.Name == "" {
		fields["name"] = domain.MsgRequired
	}
	if msg := domain.QuantityProblem(int64(in.Quantity)); msg != "" {
		fields["quantity"] = msg
	}
	if msg := domain.PriceProblem(in.Price); msg != "" {
		fields["price"] = msg
	}
	if !in.CategoryID.IsZero() {
		category, err := uc.categories.GetByID(ctx, in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			fields["categoryId"] = domain.MsgUnknownCategory
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Quantity:   p.Quantity,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
