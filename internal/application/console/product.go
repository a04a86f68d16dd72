package console

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/dto"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/pkg/logger"
	"github.com/shopspring/decimal"
)

const productsPath = "/products"

// CategoryPlaceholder texto mostrado cuando la categoría de un producto no está en la lista local.
const CategoryPlaceholder = "Categoría no encontrada"

// ProductDraft borrador del formulario de productos. Los valores numéricos se guardan como
// texto tal como los escribió el usuario; se convierten al enviar.
type ProductDraft struct {
	ID         entity.ID
	Name       string
	Quantity   string
	Price      string
	CategoryID entity.ID
}

// ProductDraftFrom copia un producto persistido al borrador.
func ProductDraftFrom(p entity.Product) ProductDraft {
	return ProductDraft{
		ID:         p.ID,
		Name:       p.Name,
		Quantity:   strconv.Itoa(p.Quantity),
		Price:      p.Price.String(),
		CategoryID: p.CategoryID,
	}
}

func (d ProductDraft) Identity() entity.ID { return d.ID }

// With campos: "name", "quantity", "price", "categoryId".
func (d ProductDraft) With(field, value string) (ProductDraft, error) {
	switch field {
	case "name":
		d.Name = value
	case "quantity":
		d.Quantity = value
	case "price":
		d.Price = value
	case "categoryId":
		d.CategoryID = entity.ID(strings.TrimSpace(value))
	default:
		return d, fieldError(field)
	}
	return d, nil
}

// Validate nombre obligatorio, cantidad entera > 0 y precio > 0 con hasta dos decimales.
// La categoría es opcional.
func (d ProductDraft) Validate() domain.FieldErrors {
	fe := domain.FieldErrors{}
	if strings.TrimSpace(d.Name) == "" {
		fe["name"] = domain.MsgRequired
	}
	q, err := strconv.ParseInt(strings.TrimSpace(d.Quantity), 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(strings.TrimSpace(d.Quantity), "-"):
		fe["quantity"] = domain.MsgQuantityTooLarge
	case err != nil:
		fe["quantity"] = domain.MsgPositiveInteger
	default:
		if msg := domain.QuantityProblem(q); msg != "" {
			fe["quantity"] = msg
		}
	}
	p, err := parsePrice(d.Price)
	if err != nil {
		fe["price"] = domain.MsgPositiveDecimal
	} else if msg := domain.PriceProblem(p); msg != "" {
		fe["price"] = msg
	}
	return fe
}

// Request cuerpo de POST/PUT. Solo válido tras Validate sin errores.
func (d ProductDraft) Request() dto.ProductRequest {
	q, _ := strconv.Atoi(strings.TrimSpace(d.Quantity))
	p, _ := parsePrice(d.Price)
	return dto.ProductRequest{
		Name:       strings.TrimSpace(d.Name),
		Quantity:   q,
		Price:      p,
		CategoryID: d.CategoryID,
	}
}

// parsePrice acepta "12.50" y también la coma decimal "12,50".
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

type productAPI struct{ gw Gateway }

func (a productAPI) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := a.gw.Get(ctx, productsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a productAPI) Create(ctx context.Context, d ProductDraft) (entity.Product, error) {
	var out entity.Product
	err := a.gw.Post(ctx, productsPath, d.Request(), &out)
	return out, err
}

func (a productAPI) Update(ctx context.Context, d ProductDraft) (entity.Product, error) {
	var out entity.Product
	err := a.gw.Put(ctx, productsPath+"/"+url.PathEscape(d.ID.String()), d.Request(), &out)
	return out, err
}

func (a productAPI) Delete(ctx context.Context, id entity.ID) error {
	return a.gw.Delete(ctx, productsPath+"/"+url.PathEscape(id.String()))
}

// ProductView vista de la pantalla de productos.
type ProductView = View[entity.Product, ProductDraft]

// ProductScreen pantalla de productos. Mantiene su propia copia de las categorías
// (solo lectura) para el selector y para resolver nombres.
type ProductScreen struct {
	*Screen[entity.Product, ProductDraft]
	categories *Store[entity.Category]
}

// NewProductScreen construye la pantalla sobre un Gateway inyectado.
func NewProductScreen(gw Gateway, log *logger.Logger) *ProductScreen {
	screen := newScreen[entity.Product, ProductDraft](
		productAPI{gw: gw},
		ProductDraftFrom,
		func(p entity.Product) string { return p.Name },
		messages{
			resource:  "products",
			created:   "Producto guardado correctamente",
			updated:   "Producto actualizado correctamente",
			deleted:   "Producto eliminado",
			loadFail:  "Error al cargar productos. Verifique que el servidor esté en ejecución",
			saveFail:  "Error al guardar producto",
			delFail:   "Error al eliminar producto",
			delPrompt: "¿Eliminar el producto %q?",
		},
		log,
	)
	ps := &ProductScreen{Screen: screen, categories: NewStore[entity.Category]()}
	cats := categoryAPI{gw: gw}
	screen.related = append(screen.related, func(ctx context.Context) error {
		return ps.categories.Load(ctx, cats.List)
	})
	return ps
}

// Categories categorías conocidas por la pantalla (para el selector).
func (s *ProductScreen) Categories() []entity.Category {
	return s.categories.Items()
}

// CategoryName resuelve el nombre de la categoría por búsqueda lineal en la última lista
// obtenida. Si no hay coincidencia devuelve CategoryPlaceholder; nunca falla.
func (s *ProductScreen) CategoryName(id entity.ID) string {
	for _, c := range s.categories.Items() {
		if c.ID == id && !id.IsZero() {
			return c.Name
		}
	}
	return CategoryPlaceholder
}
