package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/console"
	"github.com/JakesDourado/Cadastro-FNR/internal/application/dto"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/gateway"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/metrics"
	"github.com/JakesDourado/Cadastro-FNR/pkg/config"
)

func newClient(t *testing.T, h http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return gateway.New(config.GatewayConfig{BaseURL: srv.URL, Timeout: time.Second}, gateway.WithMetrics(metrics.New("test")))
}

func TestClient_GetDecodificaLista(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":12,"name":"Lápiz","quantity":3,"price":"1.25","categoryId":"4"}]`)
	})

	var out []entity.Product
	require.NoError(t, c.Get(context.Background(), "/products", &out))

	require.Len(t, out, 1)
	assert.Equal(t, entity.ID("12"), out[0].ID)
	assert.Equal(t, 3, out[0].Quantity)
	assert.True(t, decimal.RequireFromString("1.25").Equal(out[0].Price))
	assert.Equal(t, entity.ID("4"), out[0].CategoryID)
}

func TestClient_PostEnviaJSON(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Books", body["name"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":7,"name":"Books","description":""}`)
	})

	var out entity.Category
	require.NoError(t, c.Post(context.Background(), "/categories", dto.CategoryRequest{Name: "Books"}, &out))

	assert.Equal(t, entity.Category{ID: "7", Name: "Books"}, out)
}

func TestClient_Delete204(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/categories/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.Delete(context.Background(), "/categories/7"))
}

func TestClient_404EsNotFound(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"code":"NOT_FOUND","message":"producto no encontrado"}`)
	})

	err := c.Put(context.Background(), "/products/9", dto.ProductRequest{Name: "x"}, nil)

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.True(t, gwErr.NotFound())
	assert.Equal(t, "NOT_FOUND", gwErr.Code)
	assert.Equal(t, "producto no encontrado", gwErr.Message)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_400ConCampos(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"code":"VALIDATION","message":"datos inválidos","fields":{"name":"Campo obligatorio"}}`)
	})

	err := c.Post(context.Background(), "/categories", dto.CategoryRequest{}, nil)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Campo obligatorio", vErr.Fields["name"])
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClient_500SinCuerpo(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.Get(context.Background(), "/categories", nil)

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusInternalServerError, gwErr.StatusCode)
	assert.Empty(t, gwErr.Message)
}

func TestClient_SinServidorEsErrorDeRed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c := gateway.New(config.GatewayConfig{BaseURL: url, Timeout: time.Second})

	err := c.Get(context.Background(), "/categories", nil)

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Zero(t, gwErr.StatusCode)
}

// La pantalla de categorías funciona de punta a punta sobre el cliente real.
func TestClient_ConPantallaDeCategorias(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /categories":
			_, _ = io.WriteString(w, `[]`)
		case "POST /categories":
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"a1","name":"Books","description":""}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	s := console.NewCategoryScreen(c, nil)
	require.NoError(t, s.Mount(context.Background()))
	s.New()
	require.NoError(t, s.SetField("name", "Books"))

	require.NoError(t, s.Submit(context.Background()))

	assert.Equal(t, []entity.Category{{ID: "a1", Name: "Books"}}, s.View().Items)
}
