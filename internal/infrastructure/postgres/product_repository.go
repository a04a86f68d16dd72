package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, quantity, price, category_id, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(p.ID), p.Name, p.Quantity, p.Price, nullableID(p.CategoryID), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return &domain.ValidationError{Fields: domain.FieldErrors{"categoryId": domain.MsgUnknownCategory}}
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, string(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET name = $2, quantity = $3, price = $4, category_id = $5, updated_at = $6 WHERE id = $1`,
		string(p.ID), p.Name, p.Quantity, p.Price, nullableID(p.CategoryID), p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ValidationError{Fields: domain.FieldErrors{"categoryId": domain.MsgUnknownCategory}}
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los productos en orden de creación.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id entity.ID) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var rawID string
	var categoryID *string
	if err := row.Scan(&rawID, &p.Name, &p.Quantity, &p.Price, &categoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.ID = entity.ID(rawID)
	if categoryID != nil {
		p.CategoryID = entity.ID(*categoryID)
	}
	return &p, nil
}
