package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/console"
	"github.com/JakesDourado/Cadastro-FNR/internal/application/dto"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/metrics"
	"github.com/JakesDourado/Cadastro-FNR/pkg/config"
	"github.com/JakesDourado/Cadastro-FNR/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa console.Gateway.
var _ console.Gateway = (*Client)(nil)

// maxBody límite de lectura de cualquier respuesta del backend.
const maxBody = 4 << 20

// Client adaptador REST del backend de catálogo sobre net/http.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Collector
	log        *logger.Logger
}

// Option ajustes opcionales del cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, transportes propios).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics registra cada llamada en el collector.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger logger para trazas de nivel debug.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New construye el cliente a partir de la configuración del gateway.
func New(cfg config.GatewayConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("gateway")
	return c
}

// BaseURL URL base del backend sin "/" final.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do ejecuta la petición. Cualquier fallo se devuelve como *domain.GatewayError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		c.metrics.ObserveGateway(method, path, status, time.Since(start))
		ev := c.log.Debug().Str("method", method).Str("path", path).Int("status", status).Dur("elapsed", time.Since(start))
		if err != nil {
			ev = ev.Err(err)
		}
		ev.Msg("gateway")
	}()

	fail := func(e error) error {
		return &domain.GatewayError{Method: method, Path: path, StatusCode: status, Err: e}
	}

	var reader io.Reader
	if body != nil {
		raw, mErr := json.Marshal(body)
		if mErr != nil {
			return fail(fmt.Errorf("serializar cuerpo: %w", mErr))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fail(fmt.Errorf("crear petición: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fail(ctx.Err())
		}
		return fail(err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fail(fmt.Errorf("leer respuesta: %w", err))
	}

	if status < 200 || status > 299 {
		return statusError(method, path, status, raw)
	}
	if out == nil || status == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fail(fmt.Errorf("decodificar respuesta: %w", err))
	}
	return nil
}

// statusError traduce una respuesta no-2xx. Si el cuerpo es un dto.ErrorResponse se
// conservan su código y mensaje.
func statusError(method, path string, status int, raw []byte) error {
	gwErr := &domain.GatewayError{Method: method, Path: path, StatusCode: status}
	var body dto.ErrorResponse
	if json.Unmarshal(raw, &body) == nil && (body.Code != "" || body.Message != "") {
		gwErr.Code = body.Code
		gwErr.Message = body.Message
	}
	switch status {
	case http.StatusNotFound:
		gwErr.Err = domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if len(body.Fields) > 0 {
			gwErr.Err = &domain.ValidationError{Fields: body.Fields}
		} else {
			gwErr.Err = domain.ErrInvalidInput
		}
	case http.StatusConflict:
		gwErr.Err = domain.ErrDuplicate
	default:
		gwErr.Err = errors.New(http.StatusText(status))
	}
	return gwErr
}
