package cli

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/console"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
)

// Encabezados aceptados por campo (se admiten los nombres de las planillas antiguas en portugués).
var (
	categoryColumns = map[string][]string{
		"name":        {"name", "nome", "nombre"},
		"description": {"description", "descricao", "descrição", "descripcion", "descripción"},
	}
	productColumns = map[string][]string{
		"name":     {"name", "nome", "nombre"},
		"quantity": {"quantity", "quantidade", "cantidad"},
		"price":    {"price", "preco", "preço", "precio"},
		"category": {"category", "categoryid", "categoria", "categoría"},
	}
)

type importOptions struct {
	encoding string
	comma    string
}

func newImportCommand(app *App) *cobra.Command {
	var opts importOptions
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Importar categorías o productos desde CSV",
		Long: "Lee un CSV con encabezado (separador ';' por defecto) y envía cada fila por el mismo\n" +
			"formulario de la consola. Las filas inválidas se informan y no detienen la importación.",
	}
	cmd.PersistentFlags().StringVar(&opts.encoding, "encoding", "utf-8", "codificación del archivo: utf-8 | iso-8859-1")
	cmd.PersistentFlags().StringVar(&opts.comma, "comma", ";", "separador de campos")

	cmd.AddCommand(&cobra.Command{
		Use:   "categories <archivo.csv>",
		Short: "Importar categorías",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := app.workspace()
			if err != nil {
				return err
			}
			return runImport(cmd, app, args[0], opts, ws.Categories, categoryColumns,
				func(row map[string]string) (map[string]string, error) { return row, nil })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "products <archivo.csv>",
		Short: "Importar productos (la categoría se indica por nombre o ID)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := app.workspace()
			if err != nil {
				return err
			}
			products := ws.Products
			return runImport(cmd, app, args[0], opts, products, productColumns,
				func(row map[string]string) (map[string]string, error) {
					ref := strings.TrimSpace(row["category"])
					delete(row, "category")
					if ref == "" {
						row["categoryId"] = ""
						return row, nil
					}
					id, ok := resolveCategory(products.Categories(), ref)
					if !ok {
						return nil, fmt.Errorf("categoría desconocida %q", ref)
					}
					row["categoryId"] = id.String()
					return row, nil
				})
		},
	})
	return cmd
}

// importScreen lo que el import necesita de una pantalla.
type importScreen interface {
	fieldSetter
	New()
	Load(ctx context.Context) error
	Submit(ctx context.Context) error
	Status() console.Status
}

// runImport procesa el CSV fila por fila a través del formulario de la pantalla.
func runImport(
	cmd *cobra.Command,
	app *App,
	path string,
	opts importOptions,
	s importScreen,
	columns map[string][]string,
	mapRow func(map[string]string) (map[string]string, error),
) error {
	comma := []rune(opts.comma)
	if len(comma) != 1 {
		return fmt.Errorf("separador inválido: %q", opts.comma)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()
	r, err := decoder(f, opts.encoding)
	if err != nil {
		return err
	}

	cr := csv.NewReader(r)
	cr.Comma = comma[0]
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("leer encabezado: %w", err)
	}
	idx, err := headerIndex(header, columns)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := s.Load(ctx); err != nil {
		return app.report(s.Status(), err)
	}

	imported, failed := 0, 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			failed++
			fmt.Fprintln(app.Err, err)
			continue
		}
		line, _ := cr.FieldPos(0)
		row := map[string]string{}
		blank := true
		for field, i := range idx {
			if i < len(rec) {
				row[field] = rec[i]
				if strings.TrimSpace(rec[i]) != "" {
					blank = false
				}
			}
		}
		if blank {
			continue
		}
		values, err := mapRow(row)
		if err != nil {
			failed++
			fmt.Fprintf(app.Err, "línea %d: %v\n", line, err)
			continue
		}
		s.New()
		for field, v := range values {
			if err := s.SetField(field, v); err != nil {
				return err
			}
		}
		if err := s.Submit(ctx); err != nil {
			failed++
			fmt.Fprintf(app.Err, "línea %d: %s\n", line, describe(err, s.Status()))
			continue
		}
		imported++
	}
	s.New()

	fmt.Fprintf(app.Out, "Importados: %d. Con error: %d\n", imported, failed)
	if failed > 0 {
		return fmt.Errorf("%d filas con error", failed)
	}
	return nil
}

func describe(err error, status console.Status) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		parts := make([]string, 0, len(vErr.Fields))
		for _, f := range vErr.Fields.Fields() {
			parts = append(parts, f+" "+vErr.Fields[f])
		}
		return strings.Join(parts, "; ")
	}
	if status.Message != "" {
		return status.Message
	}
	return err.Error()
}

func resolveCategory(categories []entity.Category, ref string) (entity.ID, bool) {
	for _, c := range categories {
		if c.ID.String() == ref || strings.EqualFold(strings.TrimSpace(c.Name), ref) {
			return c.ID, true
		}
	}
	return "", false
}

// decoder abre el archivo con la codificación indicada.
func decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(encoding, "_", "-")) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", encoding)
	}
}

// headerIndex mapea campo -> columna según los alias aceptados.
func headerIndex(header []string, columns map[string][]string) (map[string]int, error) {
	idx := map[string]int{}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for field, aliases := range columns {
			for _, a := range aliases {
				if h == a {
					idx[field] = i
				}
			}
		}
	}
	if _, ok := idx["name"]; !ok {
		return nil, errors.New("el encabezado no tiene columna de nombre")
	}
	return idx, nil
}
