package console

import (
	"maps"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
)

// Draft borrador inmutable de una entidad. With devuelve una copia con el campo cambiado
// (domain.ErrUnknownField si no existe). Validate debe ser una función pura del borrador.
type Draft[D any] interface {
	Identity() entity.ID
	With(field, value string) (D, error)
	Validate() domain.FieldErrors
}

// Form unidad de formulario: borrador, errores por campo y si la superficie de edición está abierta.
// No es seguro para uso concurrente; la pantalla que lo contiene lo protege.
type Form[D Draft[D]] struct {
	draft  D
	errors domain.FieldErrors
	open   bool
}

// SetField actualiza un campo del borrador y limpia el error previo de ese campo.
func (f *Form[D]) SetField(name, value string) error {
	next, err := f.draft.With(name, value)
	if err != nil {
		return err
	}
	f.draft = next
	delete(f.errors, name)
	return nil
}

// Validate devuelve los errores del borrador actual sin modificar el formulario.
func (f *Form[D]) Validate() domain.FieldErrors {
	return f.draft.Validate()
}

// Reset vuelve al borrador vacío y limpia los errores.
func (f *Form[D]) Reset() {
	var zero D
	f.draft = zero
	f.errors = nil
}

// LoadForEdit copia una entidad existente al borrador (modo actualización: Identity no vacío).
func (f *Form[D]) LoadForEdit(d D) {
	f.draft = d
	f.errors = nil
	f.open = true
}

// Draft borrador actual.
func (f *Form[D]) Draft() D { return f.draft }

// Errors copia de los errores visibles.
func (f *Form[D]) Errors() domain.FieldErrors {
	return maps.Clone(f.errors)
}

// Editing indica modo actualización.
func (f *Form[D]) Editing() bool { return !f.draft.Identity().IsZero() }

func (f *Form[D]) setErrors(fe domain.FieldErrors) { f.errors = maps.Clone(fe) }

// Open abre la superficie de edición con el borrador actual.
func (f *Form[D]) Open() { f.open = true }

// Close cierra la superficie de edición sin tocar el borrador.
func (f *Form[D]) Close() { f.open = false }

// IsOpen indica si la superficie de edición está visible.
func (f *Form[D]) IsOpen() bool { return f.open }
