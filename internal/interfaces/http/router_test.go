package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/dto"
	"github.com/JakesDourado/Cadastro-FNR/internal/application/usecase"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/metrics"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/sqlite"
	apphttp "github.com/JakesDourado/Cadastro-FNR/internal/interfaces/http"
	"github.com/JakesDourado/Cadastro-FNR/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la API completa sobre SQLite en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	categories := sqlite.NewCategoryRepository(db)
	products := sqlite.NewProductRepository(db)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:  usecase.NewCategoryUseCase(categories),
		ProductUC:   usecase.NewProductUseCase(products, categories),
		Metrics:     metrics.New("test"),
		ServiceName: "cadastro-test",
	})
	return app
}

// doJSON lanza la petición y devuelve la respuesta con el cuerpo leído.
func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func createCategory(t *testing.T, app *fiber.App, name string) dto.CategoryResponse {
	t.Helper()
	resp, raw := doJSON(t, app, http.MethodPost, "/categories", `{"name":"`+name+`","description":""}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var out dto.CategoryResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories_CicloCompleto(t *testing.T) {
	app := buildTestApp(t)

	created := createCategory(t, app, "Books")
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Books", created.Name)

	resp, raw := doJSON(t, app, http.MethodPut, "/categories/"+created.ID.String(), `{"name":"Libros","description":"papel"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	resp, raw = doJSON(t, app, http.MethodGet, "/categories", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Libros", list[0].Name)
	assert.Equal(t, "papel", list[0].Description)

	resp, _ = doJSON(t, app, http.MethodDelete, "/categories/"+created.ID.String(), "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/categories/"+created.ID.String(), "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCategories_NombreVacioEs400ConCampos(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/categories", `{"name":"  ","description":"x"}`)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, apphttp.CodeValidation, out.Code)
	assert.Contains(t, out.Fields, "name")
}

func TestCategories_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/categories", `{"name":`)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), apphttp.CodeInvalidBody)
}

func TestCategories_ActualizarInexistenteEs404(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPut, "/categories/nope", `{"name":"x"}`)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), apphttp.CodeNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CrearConYSinCategoria(t *testing.T) {
	app := buildTestApp(t)
	cat := createCategory(t, app, "Papelería")

	resp, raw := doJSON(t, app, http.MethodPost, "/products",
		`{"name":"Lápiz","quantity":3,"price":"1.50","categoryId":"`+cat.ID.String()+`"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var p dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.Equal(t, cat.ID, p.CategoryID)
	assert.Equal(t, "1.5", p.Price.String())

	resp, raw = doJSON(t, app, http.MethodPost, "/products", `{"name":"Goma","quantity":1,"price":0.8}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	assert.NotContains(t, string(raw), "categoryId")

	resp, raw = doJSON(t, app, http.MethodGet, "/products", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Len(t, list, 2)
}

func TestProducts_Validacion(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/products", `{"name":"","quantity":0,"price":"-1","categoryId":"nope"}`)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.ElementsMatch(t, []string{"name", "quantity", "price", "categoryId"}, keys(out.Fields))
}

func TestProducts_LimitesDeAlmacenamiento(t *testing.T) {
	app := buildTestApp(t)

	cases := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{"precio que se guardaría como cero", `{"name":"x","quantity":1,"price":"0.004"}`, "price", domain.MsgPriceScale},
		{"precio que se redondearía", `{"name":"x","quantity":1,"price":"1.005"}`, "price", domain.MsgPriceScale},
		{"precio fuera de NUMERIC(14,2)", `{"name":"x","quantity":1,"price":"1000000000000"}`, "price", domain.MsgPriceTooLarge},
		{"cantidad mayor que int32", `{"name":"x","quantity":2147483648,"price":"1"}`, "quantity", domain.MsgQuantityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := doJSON(t, app, http.MethodPost, "/products", tc.body)

			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, string(raw))
			var out dto.ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &out))
			assert.Equal(t, map[string]string{tc.field: tc.msg}, out.Fields)
		})
	}

	resp, raw := doJSON(t, app, http.MethodPost, "/products", `{"name":"x","quantity":2147483647,"price":"999999999999.99"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "999999999999.99", created.Price.StringFixed(2))
}

func TestProducts_BorrarCategoriaLaQuitaDelProducto(t *testing.T) {
	app := buildTestApp(t)
	cat := createCategory(t, app, "A")
	resp, raw := doJSON(t, app, http.MethodPost, "/products",
		`{"name":"x","quantity":1,"price":"1","categoryId":"`+cat.ID.String()+`"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var p dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &p))

	resp, _ = doJSON(t, app, http.MethodDelete, "/categories/"+cat.ID.String(), "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodGet, "/products/"+p.ID.String(), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, got.CategoryID.IsZero())
}

func TestProducts_BorrarInexistenteEs404(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodDelete, "/products/nope", "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestErrorInterno_NoExponeElDetalle(t *testing.T) {
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	var logs bytes.Buffer
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(sqlite.NewCategoryRepository(db)),
		ProductUC:  usecase.NewProductUseCase(sqlite.NewProductRepository(db), sqlite.NewCategoryRepository(db)),
		Log:        logger.New(logger.Config{Env: "production", Level: "info", Output: &logs}),
	})
	require.NoError(t, db.Close())

	resp, raw := doJSON(t, app, http.MethodGet, "/categories", "")

	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, apphttp.CodeInternal, out.Code)
	assert.NotContains(t, string(raw), "closed")
	assert.Contains(t, logs.String(), "database is closed", "la causa queda en el log")
}

func TestHealth(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "cadastro-test")
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
