package console_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/console"
	"github.com/JakesDourado/Cadastro-FNR/internal/application/dto"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
)

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func mountedProducts(t *testing.T, gw *fakeGateway) *console.ProductScreen {
	t.Helper()
	gw.on("GET", "/products", `[{"id":"p1","name":"Lápiz","quantity":10,"price":"1.50","categoryId":"c1"},{"id":"p2","name":"Goma","quantity":1,"price":"0.80","categoryId":"c9"}]`)
	gw.on("GET", "/categories", `[{"id":"c1","name":"Papelería","description":""}]`)
	s := console.NewProductScreen(gw, nil)
	require.NoError(t, s.Mount(context.Background()))
	return s
}

func TestProductScreen_MountCargaProductosYCategorias(t *testing.T) {
	gw := newFakeGateway()
	s := mountedProducts(t, gw)

	assert.ElementsMatch(t, []string{"GET /products", "GET /categories"}, gw.recorded())
	assert.Len(t, s.View().Items, 2)
	assert.Equal(t, []entity.Category{{ID: "c1", Name: "Papelería"}}, s.Categories())
}

func TestProductScreen_CategoryName(t *testing.T) {
	gw := newFakeGateway()
	s := mountedProducts(t, gw)

	assert.Equal(t, "Papelería", s.CategoryName("c1"))
	assert.Equal(t, console.CategoryPlaceholder, s.CategoryName("c9"))
	assert.Equal(t, console.CategoryPlaceholder, s.CategoryName(""))
}

func TestProductScreen_CategoryNameSinCategoriasCargadas(t *testing.T) {
	s := console.NewProductScreen(newFakeGateway(), nil)

	assert.NotPanics(t, func() {
		assert.Equal(t, console.CategoryPlaceholder, s.CategoryName("c1"))
	})
}

func TestProductScreen_SubmitEnviaValoresConvertidos(t *testing.T) {
	gw := newFakeGateway()
	s := mountedProducts(t, gw)
	gw.on("POST", "/products", `{"id":"p3","name":"Cuaderno","quantity":5,"price":"3.25","categoryId":"c1"}`)
	s.New()
	setFields(t, s, "name", "Cuaderno", "quantity", "5", "price", "3,25", "categoryId", "c1")

	require.NoError(t, s.Submit(context.Background()))

	body, ok := gw.bodies[len(gw.bodies)-1].(dto.ProductRequest)
	require.True(t, ok)
	assert.Equal(t, 5, body.Quantity)
	assert.True(t, decimal.RequireFromString("3.25").Equal(body.Price))
	items := s.View().Items
	require.Len(t, items, 3)
	assert.Equal(t, entity.ID("p3"), items[2].ID)
}

func TestProductScreen_EditCopiaValoresComoTexto(t *testing.T) {
	gw := newFakeGateway()
	s := mountedProducts(t, gw)

	require.NoError(t, s.Edit("p1"))

	d := s.View().Draft
	assert.Equal(t, "10", d.Quantity)
	assert.Equal(t, "1.5", d.Price)
	assert.Equal(t, entity.ID("c1"), d.CategoryID)
}

func TestWorkspace_StoresDisjuntos(t *testing.T) {
	gw := newFakeGateway()
	gw.on("GET", "/categories", `[{"id":"c1","name":"Papelería"}]`)
	gw.on("GET", "/products", `[]`)
	ws := console.NewWorkspace(gw, nil)

	require.NoError(t, ws.Products.Mount(context.Background()))

	assert.Len(t, ws.Products.Categories(), 1)
	assert.Equal(t, 0, ws.Categories.Store().Len())
}
