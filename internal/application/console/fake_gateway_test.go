package console_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
)

// fakeGateway responde con JSON fijo por "MÉTODO ruta" y registra cada llamada.
type fakeGateway struct {
	mu        sync.Mutex
	responses map[string]string
	failures  map[string]error
	calls     []string
	bodies    []any
	// gates permite bloquear una llamada hasta que el test la libere.
	gates map[string]chan struct{}
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		responses: map[string]string{},
		failures:  map[string]error{},
		gates:     map[string]chan struct{}{},
	}
}

func (g *fakeGateway) on(method, path, body string) *fakeGateway {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses[method+" "+path] = body
	delete(g.failures, method+" "+path)
	return g
}

func (g *fakeGateway) fail(method, path string, err error) *fakeGateway {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures[method+" "+path] = err
	return g
}

func (g *fakeGateway) gate(method, path string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch := make(chan struct{})
	g.gates[method+" "+path] = ch
	return ch
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *fakeGateway) recorded() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func (g *fakeGateway) do(ctx context.Context, method, path string, body, out any) error {
	key := method + " " + path
	g.mu.Lock()
	g.calls = append(g.calls, key)
	g.bodies = append(g.bodies, body)
	gate := g.gates[key]
	delete(g.gates, key)
	g.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	g.mu.Lock()
	err, failing := g.failures[key]
	resp, ok := g.responses[key]
	g.mu.Unlock()
	if failing {
		return err
	}
	if !ok {
		return &domain.GatewayError{Method: method, Path: path, StatusCode: 404, Err: domain.ErrNotFound}
	}
	if out == nil || resp == "" {
		return nil
	}
	return json.Unmarshal([]byte(resp), out)
}

func (g *fakeGateway) Get(ctx context.Context, path string, out any) error {
	return g.do(ctx, "GET", path, nil, out)
}

func (g *fakeGateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, "POST", path, body, out)
}

func (g *fakeGateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, "PUT", path, body, out)
}

func (g *fakeGateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, "DELETE", path, nil, nil)
}
