package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/console"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
)

// screenRoutes rutas de una pantalla lista + formulario. Todo lo que cambia el estado de la
// sesión es POST y redirige (303) a la lista; los GET solo leen.
type screenRoutes[T console.Keyed, D console.Draft[D]] struct {
	base     string
	template string
	title    string
	fields   []string
	screen   func(*console.Workspace) *console.Screen[T, D]
	extend   func(*console.Workspace, console.View[T, D], fiber.Map)
}

func (r screenRoutes[T, D]) register(router fiber.Router) {
	g := router.Group(r.base)
	g.Get("/", r.list)
	g.Post("/", r.submit)
	g.Post("/refresh", r.refresh)
	g.Post("/new", r.newDraft)
	g.Post("/cancel", r.cancel)
	g.Post("/:id/edit", r.edit)
	g.Get("/:id/delete", r.confirmDelete)
	g.Post("/:id/delete", r.delete)
}

func (r screenRoutes[T, D]) back(c *fiber.Ctx) error {
	return c.Redirect(r.base, fiber.StatusSeeOther)
}

func busy(c *fiber.Ctx) error {
	return c.Status(fiber.StatusConflict).SendString(domain.ErrBusy.Error())
}

// list muestra la pantalla. El mensaje de estado se muestra una sola vez.
func (r screenRoutes[T, D]) list(c *fiber.Ctx) error {
	ws := workspace(c)
	s := r.screen(ws)
	_ = s.Mount(c.UserContext())

	v := s.View()
	data := fiber.Map{
		"Title":       r.title,
		"Active":      r.template,
		"Base":        r.base,
		"View":        v,
		"Status":      v.Status,
		"SubmitLabel": submitLabel(v.Editing),
	}
	if r.extend != nil {
		r.extend(ws, v, data)
	}
	if err := c.Render(r.template, data, "layouts/main"); err != nil {
		return err
	}
	s.Dismiss()
	return nil
}

func (r screenRoutes[T, D]) submit(c *fiber.Ctx) error {
	s := r.screen(workspace(c))
	for _, f := range r.fields {
		if err := s.SetField(f, c.FormValue(f)); err != nil {
			if errors.Is(err, domain.ErrBusy) {
				return busy(c)
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	if err := s.Submit(c.UserContext()); errors.Is(err, domain.ErrBusy) {
		return busy(c)
	}
	return r.back(c)
}

func (r screenRoutes[T, D]) refresh(c *fiber.Ctx) error {
	if err := r.screen(workspace(c)).Load(c.UserContext()); errors.Is(err, domain.ErrBusy) {
		return busy(c)
	}
	return r.back(c)
}

func (r screenRoutes[T, D]) newDraft(c *fiber.Ctx) error {
	r.screen(workspace(c)).New()
	return r.back(c)
}

func (r screenRoutes[T, D]) cancel(c *fiber.Ctx) error {
	r.screen(workspace(c)).Cancel()
	return r.back(c)
}

func (r screenRoutes[T, D]) edit(c *fiber.Ctx) error {
	err := r.screen(workspace(c)).Edit(entity.ID(c.Params("id")))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, domain.ErrBusy):
		return busy(c)
	}
	return r.back(c)
}

// confirmDelete pide la confirmación explícita antes de eliminar.
func (r screenRoutes[T, D]) confirmDelete(c *fiber.Ctx) error {
	id := entity.ID(c.Params("id"))
	prompt, ok := r.screen(workspace(c)).DeletePrompt(id)
	if !ok {
		return fiber.ErrNotFound
	}
	return c.Render("confirm", fiber.Map{
		"Title":  r.title,
		"Active": r.template,
		"Base":   r.base,
		"ID":     id,
		"Prompt": prompt,
	}, "layouts/main")
}

// delete elimina solo si el formulario trae confirm=yes.
func (r screenRoutes[T, D]) delete(c *fiber.Ctx) error {
	confirmed := c.FormValue("confirm") == "yes"
	err := r.screen(workspace(c)).Delete(c.UserContext(), entity.ID(c.Params("id")), func(string) bool {
		return confirmed
	})
	if errors.Is(err, domain.ErrBusy) {
		return busy(c)
	}
	return r.back(c)
}

func submitLabel(editing bool) string {
	if editing {
		return "Actualizar"
	}
	return "Guardar"
}
