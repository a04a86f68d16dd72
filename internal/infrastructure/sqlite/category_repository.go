package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/repository"
	"github.com/jmoiron/sqlx"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

type categoryRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func (r categoryRow) toEntity() *entity.Category {
	return &entity.Category{
		ID:          entity.ID(r.ID),
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}
}

// CategoryRepo CategoryRepository sobre SQLite.
type CategoryRepo struct{ db *sqlx.DB }

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories(id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		string(c.ID), c.Name, c.Description, formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Category, error) {
	var row categoryRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, name, description, created_at, updated_at FROM categories WHERE id = ?`, string(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return row.toEntity(), nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		c.Name, c.Description, formatTime(c.UpdatedAt), string(c.ID))
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return requireAffected(res)
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name, description, created_at, updated_at FROM categories ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id entity.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
