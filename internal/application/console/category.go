package console

import (
	"context"
	"net/url"
	"strings"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/dto"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/pkg/logger"
)

const categoriesPath = "/categories"

// CategoryDraft borrador del formulario de categorías.
type CategoryDraft struct {
	ID          entity.ID
	Name        string
	Description string
}

// CategoryDraftFrom copia una categoría persistida al borrador.
func CategoryDraftFrom(c entity.Category) CategoryDraft {
	return CategoryDraft{ID: c.ID, Name: c.Name, Description: c.Description}
}

func (d CategoryDraft) Identity() entity.ID { return d.ID }

// With campos: "name", "description".
func (d CategoryDraft) With(field, value string) (CategoryDraft, error) {
	switch field {
	case "name":
		d.Name = value
	case "description":
		d.Description = value
	default:
		return d, fieldError(field)
	}
	return d, nil
}

// Validate nombre obligatorio; la descripción es opcional.
func (d CategoryDraft) Validate() domain.FieldErrors {
	fe := domain.FieldErrors{}
	if strings.TrimSpace(d.Name) == "" {
		fe["name"] = domain.MsgRequired
	}
	return fe
}

// Request cuerpo de POST/PUT.
func (d CategoryDraft) Request() dto.CategoryRequest {
	return dto.CategoryRequest{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
	}
}

type categoryAPI struct{ gw Gateway }

func (a categoryAPI) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := a.gw.Get(ctx, categoriesPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a categoryAPI) Create(ctx context.Context, d CategoryDraft) (entity.Category, error) {
	var out entity.Category
	err := a.gw.Post(ctx, categoriesPath, d.Request(), &out)
	return out, err
}

func (a categoryAPI) Update(ctx context.Context, d CategoryDraft) (entity.Category, error) {
	var out entity.Category
	err := a.gw.Put(ctx, categoriesPath+"/"+url.PathEscape(d.ID.String()), d.Request(), &out)
	return out, err
}

func (a categoryAPI) Delete(ctx context.Context, id entity.ID) error {
	return a.gw.Delete(ctx, categoriesPath+"/"+url.PathEscape(id.String()))
}

// CategoryScreen pantalla de categorías.
type CategoryScreen = Screen[entity.Category, CategoryDraft]

// CategoryView vista de la pantalla de categorías.
type CategoryView = View[entity.Category, CategoryDraft]

// NewCategoryScreen construye la pantalla sobre un Gateway inyectado.
func NewCategoryScreen(gw Gateway, log *logger.Logger) *CategoryScreen {
	return newScreen[entity.Category, CategoryDraft](
		categoryAPI{gw: gw},
		CategoryDraftFrom,
		func(c entity.Category) string { return c.Name },
		messages{
			resource:  "categories",
			created:   "Categoría guardada correctamente",
			updated:   "Categoría actualizada correctamente",
			deleted:   "Categoría eliminada",
			loadFail:  "Error al cargar categorías. Verifique que el servidor esté en ejecución",
			saveFail:  "Error al guardar categoría",
			delFail:   "Error al eliminar categoría",
			delPrompt: "¿Eliminar la categoría %q?",
		},
		log,
	)
}

func fieldError(field string) error {
	return &unknownFieldError{field: field}
}

type unknownFieldError struct{ field string }

func (e *unknownFieldError) Error() string { return domain.ErrUnknownField.Error() + ": " + e.field }
func (e *unknownFieldError) Unwrap() error { return domain.ErrUnknownField }
