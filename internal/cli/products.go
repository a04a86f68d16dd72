package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
)

type productFlags struct {
	name, quantity, price, categoryID string
}

func (f *productFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "nombre")
	cmd.Flags().StringVar(&f.quantity, "quantity", "", "cantidad (entero > 0)")
	cmd.Flags().StringVar(&f.price, "price", "", "precio (> 0, admite coma decimal)")
	cmd.Flags().StringVar(&f.categoryID, "category-id", "", "ID de la categoría (vacío = sin categoría)")
}

func (f *productFlags) values() map[string]string {
	return map[string]string{
		"name":       f.name,
		"quantity":   f.quantity,
		"price":      f.price,
		"categoryId": f.categoryID,
	}
}

func newProductsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "prod"},
		Short:   "Gestionar productos",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Listar productos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.workspace()
			if err != nil {
				return err
			}
			s := ws.Products
			if err := s.Load(cmd.Context()); err != nil {
				return app.report(s.Status(), err)
			}
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "ID\tNOMBRE\tCANTIDAD\tPRECIO\tCATEGORÍA\t")
			for _, p := range s.Store().Items() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
					p.ID, p.Name, app.Prices.Quantity(p.Quantity), app.Prices.Format(p.Price), s.CategoryName(p.CategoryID))
			}
			return tw.Flush()
		},
	})

	var createFlags productFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear producto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.workspace()
			if err != nil {
				return err
			}
			s := ws.Products
			s.New()
			if err := setFlags(cmd, s, createFlags.values()); err != nil {
				return err
			}
			err = s.Submit(cmd.Context())
			return app.report(s.Status(), err)
		},
	}
	createFlags.bind(create)
	cmd.AddCommand(create)

	var updateFlags productFlags
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualizar producto (solo los campos indicados)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := app.workspace()
			if err != nil {
				return err
			}
			s := ws.Products
			if err := s.Load(cmd.Context()); err != nil {
				return app.report(s.Status(), err)
			}
			if err := s.Edit(entity.ID(args[0])); err != nil {
				return fmt.Errorf("producto %s: %w", args[0], err)
			}
			if err := setFlags(cmd, s, updateFlags.values()); err != nil {
				return err
			}
			err = s.Submit(cmd.Context())
			return app.report(s.Status(), err)
		},
	}
	updateFlags.bind(update)
	cmd.AddCommand(update)

	cmd.AddCommand(newDeleteCommand(app, "producto", func() (deleter, error) {
		ws, err := app.workspace()
		if err != nil {
			return nil, err
		}
		return ws.Products, nil
	}))
	return cmd
}
