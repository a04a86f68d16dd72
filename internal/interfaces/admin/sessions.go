package admin

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/console"
)

const localWorkspace = "workspace"

type session struct {
	ws   *console.Workspace
	seen time.Time
}

// Sessions un espacio de trabajo (par de pantallas) por navegador, identificado por cookie.
type Sessions struct {
	cookie  string
	ttl     time.Duration
	factory func() *console.Workspace
	now     func() time.Time

	mu   sync.Mutex
	byID map[string]*session
}

// NewSessions crea el registro. factory construye un Workspace nuevo para cada sesión.
func NewSessions(cookie string, ttl time.Duration, factory func() *console.Workspace) *Sessions {
	return &Sessions{
		cookie:  cookie,
		ttl:     ttl,
		factory: factory,
		now:     time.Now,
		byID:    map[string]*session{},
	}
}

// Middleware asigna la cookie si falta y deja el Workspace en c.Locals.
// El sid se copia: sin Immutable, fiber reutiliza el buffer de la petición.
func (s *Sessions) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := utils.CopyString(c.Cookies(s.cookie))
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     s.cookie,
				Value:    sid,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(localWorkspace, s.get(sid))
		return c.Next()
	}
}

func (s *Sessions) get(sid string) *console.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[sid]
	if !ok {
		sess = &session{ws: s.factory()}
		s.byID[sid] = sess
	}
	sess.seen = s.now()
	return sess.ws
}

// Workspace espacio de trabajo de una sesión existente.
func (s *Sessions) Workspace(sid string) (*console.Workspace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[sid]
	if !ok {
		return nil, false
	}
	return sess.ws, true
}

// Len sesiones vivas.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// Sweep descarta las sesiones inactivas por más de ttl. Devuelve cuántas eliminó.
func (s *Sessions) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	limit := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for sid, sess := range s.byID {
		if sess.seen.Before(limit) {
			delete(s.byID, sid)
			n++
		}
	}
	return n
}

// Run ejecuta Sweep cada interval hasta que ctx se cancele.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}

func workspace(c *fiber.Ctx) *console.Workspace {
	ws, _ := c.Locals(localWorkspace).(*console.Workspace)
	return ws
}
