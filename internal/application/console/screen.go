package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/pkg/logger"
)

// resourceAPI las cuatro llamadas CRUD de un recurso, montadas sobre el Gateway.
type resourceAPI[T any, D any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, d D) (T, error)
	Update(ctx context.Context, d D) (T, error)
	Delete(ctx context.Context, id entity.ID) error
}

// messages textos visibles de una pantalla.
type messages struct {
	resource  string // para logs: "categories", "products"
	created   string
	updated   string
	deleted   string
	loadFail  string
	saveFail  string
	delFail   string
	delPrompt string // recibe el nombre de la entidad
}

// View instantánea de solo lectura para renderizar.
type View[T Keyed, D Draft[D]] struct {
	Items    []T
	Draft    D
	Errors   domain.FieldErrors
	FormOpen bool
	Editing  bool
	Status   Status
	Loaded   bool
}

// Screen controlador de una pantalla de lista + formulario.
// El mutex nunca se mantiene durante una llamada al Gateway.
type Screen[T Keyed, D Draft[D]] struct {
	api     resourceAPI[T, D]
	toDraft func(T) D
	label   func(T) string
	msg     messages
	log     *logger.Logger

	store *Store[T]

	mu      sync.Mutex
	form    Form[D]
	status  Status
	mounted bool
	related []func(context.Context) error
}

func newScreen[T Keyed, D Draft[D]](api resourceAPI[T, D], toDraft func(T) D, label func(T) string, msg messages, log *logger.Logger) *Screen[T, D] {
	if log == nil {
		log = logger.Nop()
	}
	return &Screen[T, D]{
		api:     api,
		toDraft: toDraft,
		label:   label,
		msg:     msg,
		log:     log.Named(msg.resource),
		store:   NewStore[T](),
	}
}

// Store acceso al store de la pantalla (lectura y tests).
func (s *Screen[T, D]) Store() *Store[T] { return s.store }

// Status estado actual.
func (s *Screen[T, D]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// View instantánea coherente del estado de la pantalla.
func (s *Screen[T, D]) View() View[T, D] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View[T, D]{
		Items:    s.store.Items(),
		Draft:    s.form.Draft(),
		Errors:   s.form.Errors(),
		FormOpen: s.form.IsOpen(),
		Editing:  s.form.Editing(),
		Status:   s.status,
		Loaded:   s.store.Loaded(),
	}
}

// Dismiss descarta un mensaje de éxito o error ya mostrado y vuelve a idle.
func (s *Screen[T, D]) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Succeeded() || s.status.Failed() {
		s.status = idle()
	}
}

// Mount carga la lista la primera vez que se abre la pantalla. Un fallo no se reintenta:
// el usuario debe pedir Load explícitamente.
func (s *Screen[T, D]) Mount(ctx context.Context) error {
	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		return nil
	}
	s.mounted = true
	s.mu.Unlock()
	return s.Load(ctx)
}

// Load trae la colección completa y reemplaza el store (también los stores relacionados).
// Una carga nueva supera a una en curso; se rechaza durante un envío.
func (s *Screen[T, D]) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.status.Submitting() {
		s.mu.Unlock()
		return domain.ErrBusy
	}
	s.mounted = true
	s.status = Status{Phase: PhaseLoading}
	related := s.related
	s.mu.Unlock()

	err := s.store.Load(ctx, s.api.List)
	if errors.Is(err, ErrStaleResponse) {
		s.log.Debug().Msg("respuesta de lista obsoleta descartada")
		return nil
	}
	for _, load := range related {
		if rerr := load(ctx); rerr != nil && !errors.Is(rerr, ErrStaleResponse) && err == nil {
			err = rerr
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Error().Err(err).Str("op", "load").Msg("error al cargar lista")
		s.status = failed(s.msg.loadFail)
		return err
	}
	s.status = idle()
	return nil
}

// New abre el formulario vacío (modo creación).
func (s *Screen[T, D]) New() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Reset()
	s.form.Open()
}

// Cancel descarta el borrador y cierra el formulario.
func (s *Screen[T, D]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Reset()
	s.form.Close()
}

// Edit copia al formulario la entidad del store local (sin ir a la red).
func (s *Screen[T, D]) Edit(id entity.ID) error {
	item, ok := s.store.Find(id)
	if !ok {
		return domain.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Submitting() {
		return domain.ErrBusy
	}
	s.form.LoadForEdit(s.toDraft(item))
	return nil
}

// SetField actualiza un campo del borrador. El formulario está deshabilitado durante un envío.
func (s *Screen[T, D]) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Submitting() {
		return domain.ErrBusy
	}
	s.form.Open()
	return s.form.SetField(name, value)
}

// Submit valida y envía el borrador: POST si no tiene ID, PUT si lo tiene.
// Con errores de validación no hay llamada de red y el formulario sigue abierto.
// Ante un fallo del Gateway el borrador queda intacto para reintentar.
func (s *Screen[T, D]) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.status.Busy() {
		s.mu.Unlock()
		return domain.ErrBusy
	}
	if fe := s.form.Validate(); len(fe) > 0 {
		s.form.setErrors(fe)
		s.form.Open()
		s.status = idle()
		s.mu.Unlock()
		return &domain.ValidationError{Fields: fe}
	}
	draft := s.form.Draft()
	s.status = Status{Phase: PhaseSubmitting}
	s.mu.Unlock()

	creating := draft.Identity().IsZero()
	var saved T
	var err error
	if creating {
		saved, err = s.api.Create(ctx, draft)
	} else {
		saved, err = s.api.Update(ctx, draft)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Error().Err(err).Str("op", "save").Str("id", draft.Identity().String()).Msg("error al guardar")
		s.status = failed(failureMessage(s.msg.saveFail, err))
		return err
	}
	msg := s.msg.created
	if creating {
		s.store.ApplyCreate(saved)
	} else {
		msg = s.msg.updated
		if !s.store.ApplyUpdate(saved) {
			s.log.Warn().Str("id", saved.Key().String()).Msg("actualización de un elemento ausente en el store local")
		}
	}
	s.form.Reset()
	s.form.Close()
	s.status = succeeded(msg)
	return nil
}

// Delete pide confirmación y, solo si se acepta, elimina en el servidor y luego en el store.
// Rechazada la confirmación devuelve domain.ErrDeleteDeclined sin llamada de red. Sin reintentos.
func (s *Screen[T, D]) Delete(ctx context.Context, id entity.ID, confirm Confirm) error {
	prompt, _ := s.DeletePrompt(id)
	if confirm == nil || !confirm(prompt) {
		return domain.ErrDeleteDeclined
	}

	s.mu.Lock()
	if s.status.Busy() {
		s.mu.Unlock()
		return domain.ErrBusy
	}
	s.status = Status{Phase: PhaseSubmitting}
	s.mu.Unlock()

	err := s.api.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Error().Err(err).Str("op", "delete").Str("id", id.String()).Msg("error al eliminar")
		s.status = failed(failureMessage(s.msg.delFail, err))
		return err
	}
	s.store.ApplyDelete(id)
	if s.form.Draft().Identity() == id {
		s.form.Reset()
		s.form.Close()
	}
	s.status = succeeded(s.msg.deleted)
	return nil
}

// DeletePrompt texto de confirmación para eliminar id. ok es false si id no está en el store
// (el texto usa entonces el propio id).
func (s *Screen[T, D]) DeletePrompt(id entity.ID) (prompt string, ok bool) {
	name := id.String()
	item, ok := s.store.Find(id)
	if ok {
		name = s.label(item)
	}
	return fmt.Sprintf(s.msg.delPrompt, name), ok
}

// failureMessage agrega el mensaje del backend cuando lo hay.
func failureMessage(base string, err error) string {
	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return base + ": " + gwErr.Message
	}
	return base
}
