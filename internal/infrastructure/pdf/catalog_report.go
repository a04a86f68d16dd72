// Package pdf genera el listado de productos en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + aplicación  │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Cant. | Precio | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Productos / Unidades / Valor del inventario        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
	"github.com/JakesDourado/Cadastro-FNR/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CatalogInput datos del listado. CategoryName nunca falla (devuelve un texto fijo si no hay coincidencia).
type CatalogInput struct {
	Title        string
	Author       string
	GeneratedAt  time.Time
	Products     []entity.Product
	CategoryName func(entity.ID) string
}

// CatalogReport genera el listado de productos con Maroto v2.
type CatalogReport struct {
	prices *format.Price
}

// NewCatalogReport construye el generador con el formateador de precios de la consola.
func NewCatalogReport(prices *format.Price) *CatalogReport {
	return &CatalogReport{prices: prices}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *CatalogReport) Generate(_ context.Context, in CatalogInput) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(in.Title, true).
		WithAuthor(in.Author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableDetailRows(in)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(in.Products))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(in CatalogInput) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(in.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(in.Author, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+in.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableDetailRows una fila por producto, en el orden del store.
func (g *CatalogReport) tableDetailRows(in CatalogInput) []core.Row {
	if len(in.Products) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("No hay productos registrados", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		))}
	}
	result := make([]core.Row, 0, len(in.Products))
	for _, p := range in.Products {
		category := ""
		if in.CategoryName != nil {
			category = in.CategoryName(p.CategoryID)
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(category, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(g.prices.Quantity(p.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.prices.Format(p.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.prices.Format(lineTotal(p)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func (g *CatalogReport) totalsRow(products []entity.Product) core.Row {
	units := 0
	value := decimal.Zero
	for _, p := range products {
		units += p.Quantity
		value = value.Add(lineTotal(p))
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	val := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Productos:"),
			label("Unidades:"),
			label("Valor del inventario:"),
		),
		col.New(3).Add(
			val(g.prices.Quantity(len(products))),
			val(g.prices.Quantity(units)),
			val(g.prices.Format(value)),
		),
	)
}

func lineTotal(p entity.Product) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
