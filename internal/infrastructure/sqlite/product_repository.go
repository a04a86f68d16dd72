package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/repository"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

type productRow struct {
	ID         string          `db:"id"`
	Name       string          `db:"name"`
	Quantity   int             `db:"quantity"`
	Price      decimal.Decimal `db:"price"`
	CategoryID sql.NullString  `db:"category_id"`
	CreatedAt  string          `db:"created_at"`
	UpdatedAt  string          `db:"updated_at"`
}

func (r productRow) toEntity() *entity.Product {
	p := &entity.Product{
		ID:        entity.ID(r.ID),
		Name:      r.Name,
		Quantity:  r.Quantity,
		Price:     r.Price,
		CreatedAt: parseTime(r.CreatedAt),
		UpdatedAt: parseTime(r.UpdatedAt),
	}
	if r.CategoryID.Valid {
		p.CategoryID = entity.ID(r.CategoryID.String)
	}
	return p
}

const productColumns = `id, name, quantity, price, category_id, created_at, updated_at`

// ProductRepo ProductRepository sobre SQLite. El precio se guarda como texto para no perder decimales.
type ProductRepo struct{ db *sqlx.DB }

// NewProductRepository construye el repositorio.
func NewProductRepository(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products(`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(p.ID), p.Name, p.Quantity, p.Price.String(), nullString(p.CategoryID),
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return mapProductErr("insert product", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, `SELECT `+productColumns+` FROM products WHERE id = ?`, string(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity(), nil
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, quantity = ?, price = ?, category_id = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Quantity, p.Price.String(), nullString(p.CategoryID), formatTime(p.UpdatedAt), string(p.ID))
	if err != nil {
		return mapProductErr("update product", err)
	}
	return requireAffected(res)
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT `+productColumns+` FROM products ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id entity.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return requireAffected(res)
}

func nullString(id entity.ID) sql.NullString {
	return sql.NullString{String: string(id), Valid: !id.IsZero()}
}

func mapProductErr(op string, err error) error {
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return &domain.ValidationError{Fields: domain.FieldErrors{"categoryId": domain.MsgUnknownCategory}}
	}
	return fmt.Errorf("%s: %w", op, err)
}
