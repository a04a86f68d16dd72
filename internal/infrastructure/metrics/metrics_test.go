package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/metrics"
)

func TestResource(t *testing.T) {
	assert.Equal(t, "products", metrics.Resource("/products/12"))
	assert.Equal(t, "categories", metrics.Resource("/categories"))
	assert.Equal(t, "categories", metrics.Resource("categories?x=1"))
	assert.Equal(t, "root", metrics.Resource("/"))
}

func TestCollector_ObserveGateway(t *testing.T) {
	c := metrics.New("test")

	c.ObserveGateway("GET", "/products/1", 200, 10*time.Millisecond)
	c.ObserveGateway("GET", "/products/2", 200, 10*time.Millisecond)
	c.ObserveGateway("DELETE", "/products/2", 0, time.Millisecond)

	families, err := c.Registry().Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "test_gateway_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			key := ""
			for _, lp := range m.GetLabel() {
				key += lp.GetName() + "=" + lp.GetValue() + ","
			}
			got[key] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, got["method=GET,resource=products,status_code=200,"])
	assert.Equal(t, 1.0, got["method=DELETE,resource=products,status_code=0,"])
}

func TestCollector_NilNoPanica(t *testing.T) {
	var c *metrics.Collector
	assert.NotPanics(t, func() {
		c.ObserveGateway("GET", "/x", 200, time.Second)
		c.ObserveHTTP("GET", "/x", 200, time.Second)
	})
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.New("test")
	c.ObserveHTTP("GET", "/categories", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.True(t, strings.Contains(string(body), "test_http_requests_total"))
}
