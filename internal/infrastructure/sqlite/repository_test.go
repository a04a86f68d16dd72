package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/sqlite"
)

func openDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepos_ListConservaElOrdenDeAlta(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	categories := sqlite.NewCategoryRepository(db)
	products := sqlite.NewProductRepository(db)
	whole := time.Date(2026, 1, 2, 10, 0, 5, 0, time.UTC)
	half := whole.Add(500 * time.Millisecond)

	require.NoError(t, categories.Create(ctx, &entity.Category{ID: "c1", Name: "Primera", CreatedAt: whole, UpdatedAt: whole}))
	require.NoError(t, categories.Create(ctx, &entity.Category{ID: "c2", Name: "Segunda", CreatedAt: half, UpdatedAt: half}))
	price := decimal.RequireFromString("1")
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p1", Name: "Primero", Quantity: 1, Price: price, CreatedAt: whole, UpdatedAt: whole}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p2", Name: "Segundo", Quantity: 1, Price: price, CreatedAt: half, UpdatedAt: half}))

	cs, err := categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, []entity.ID{"c1", "c2"}, []entity.ID{cs[0].ID, cs[1].ID})
	assert.True(t, whole.Equal(cs[0].CreatedAt))

	ps, err := products.List(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, []entity.ID{"p1", "p2"}, []entity.ID{ps[0].ID, ps[1].ID})
}

func TestCategoryRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewCategoryRepository(openDB(t))
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, repo.Create(ctx, &entity.Category{ID: "c1", Name: "Libros", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.Create(ctx, &entity.Category{ID: "c2", Name: "Música", Description: "CDs", CreatedAt: now, UpdatedAt: now}))

	got, err := repo.GetByID(ctx, "c2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "CDs", got.Description)
	assert.True(t, now.Equal(got.CreatedAt))

	got.Name = "Discos"
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Libros", list[0].Name)
	assert.Equal(t, "Discos", list[1].Name)

	require.NoError(t, repo.Delete(ctx, "c1"))
	missing, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryRepo_InexistenteEsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewCategoryRepository(openDB(t))

	assert.ErrorIs(t, repo.Update(ctx, &entity.Category{ID: "x", Name: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "x"), domain.ErrNotFound)
}

func TestProductRepo_CRUDYPrecioExacto(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	categories := sqlite.NewCategoryRepository(db)
	repo := sqlite.NewProductRepository(db)
	now := time.Now().UTC()
	require.NoError(t, categories.Create(ctx, &entity.Category{ID: "c1", Name: "Papelería", CreatedAt: now, UpdatedAt: now}))

	p := &entity.Product{ID: "p1", Name: "Lápiz", Quantity: 3, Price: decimal.RequireFromString("0.10"), CategoryID: "c1", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p2", Name: "Goma", Quantity: 1, Price: decimal.NewFromInt(2), CreatedAt: now, UpdatedAt: now}))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString("0.1").Equal(got.Price))
	assert.Equal(t, entity.ID("c1"), got.CategoryID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[1].CategoryID.IsZero())

	got.Quantity = 9
	require.NoError(t, repo.Update(ctx, got))
	again, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 9, again.Quantity)
}

func TestProductRepo_CategoriaInexistenteEsValidacion(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductRepository(openDB(t))

	err := repo.Create(ctx, &entity.Product{ID: "p1", Name: "x", Quantity: 1, Price: decimal.NewFromInt(1), CategoryID: "nope"})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.MsgUnknownCategory, vErr.Fields["categoryId"])
}

func TestProductRepo_BorrarCategoriaDejaProductoSinCategoria(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	categories := sqlite.NewCategoryRepository(db)
	repo := sqlite.NewProductRepository(db)
	require.NoError(t, categories.Create(ctx, &entity.Category{ID: "c1", Name: "A"}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p1", Name: "x", Quantity: 1, Price: decimal.NewFromInt(1), CategoryID: "c1"}))

	require.NoError(t, categories.Delete(ctx, "c1"))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.CategoryID.IsZero())
}
