// Package admin consola web de administración de categorías y productos.
// Renderiza en el servidor (fiber + html/template) y habla con el backend a través
// del Gateway de cada sesión.
package admin

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/console"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/metrics"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/pdf"
	apphttp "github.com/JakesDourado/Cadastro-FNR/internal/interfaces/http"
	"github.com/JakesDourado/Cadastro-FNR/pkg/format"
	"github.com/JakesDourado/Cadastro-FNR/pkg/logger"
)

//go:embed templates
var templatesFS embed.FS

// Deps dependencias de la consola.
type Deps struct {
	AppName  string
	Sessions *Sessions
	Prices   *format.Price
	Report   *pdf.CatalogReport
	Metrics  *metrics.Collector
	Log      *logger.Logger
}

// productRow fila de la tabla de productos ya formateada para la vista.
type productRow struct {
	ID       entity.ID
	Name     string
	Quantity string
	Price    string
	Category string
}

// NewApp construye la aplicación fiber de la consola.
func NewApp(deps Deps) (*fiber.App, error) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")

	app := fiber.New(fiber.Config{
		AppName: deps.AppName,
		Views:   engine,
		// Los borradores y los ids de sesión sobreviven a la petición.
		Immutable:    true,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).SendString(err.Error())
		},
	})
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(apphttp.RequestLogger(deps.Log.Named("admin"), deps.Metrics))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName, "sessions": deps.Sessions.Len()})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	app.Use(deps.Sessions.Middleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/categories", fiber.StatusSeeOther)
	})

	categoryRoutes().register(app)

	products := productRoutes(deps.Prices)
	app.Get("/products/report.pdf", productReport(deps))
	products.register(app)

	return app, nil
}

func categoryRoutes() screenRoutes[entity.Category, console.CategoryDraft] {
	return screenRoutes[entity.Category, console.CategoryDraft]{
		base:     "/categories",
		template: "categories",
		title:    "Categorías",
		fields:   []string{"name", "description"},
		screen: func(ws *console.Workspace) *console.Screen[entity.Category, console.CategoryDraft] {
			return ws.Categories
		},
	}
}

func productRoutes(prices *format.Price) screenRoutes[entity.Product, console.ProductDraft] {
	return screenRoutes[entity.Product, console.ProductDraft]{
		base:     "/products",
		template: "products",
		title:    "Productos",
		fields:   []string{"name", "quantity", "price", "categoryId"},
		screen: func(ws *console.Workspace) *console.Screen[entity.Product, console.ProductDraft] {
			return ws.Products.Screen
		},
		extend: func(ws *console.Workspace, v console.ProductView, data fiber.Map) {
			rows := make([]productRow, 0, len(v.Items))
			for _, p := range v.Items {
				rows = append(rows, productRow{
					ID:       p.ID,
					Name:     p.Name,
					Quantity: prices.Quantity(p.Quantity),
					Price:    prices.Format(p.Price),
					Category: ws.Products.CategoryName(p.CategoryID),
				})
			}
			data["Rows"] = rows
			data["Categories"] = ws.Products.Categories()
		},
	}
}

// productReport listado PDF del store de productos de la sesión.
func productReport(deps Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products := workspace(c).Products
		if err := products.Mount(c.UserContext()); err != nil && !products.Store().Loaded() {
			return fiber.NewError(fiber.StatusBadGateway, products.Status().Message)
		}
		out, err := deps.Report.Generate(c.UserContext(), pdf.CatalogInput{
			Title:        "Catálogo de productos",
			Author:       deps.AppName,
			GeneratedAt:  time.Now(),
			Products:     products.Store().Items(),
			CategoryName: products.CategoryName,
		})
		if err != nil {
			deps.Log.Error().Err(err).Msg("generar listado PDF")
			return fiber.NewError(fiber.StatusInternalServerError, "no se pudo generar el PDF")
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `inline; filename="productos.pdf"`)
		return c.Send(out)
	}
}
