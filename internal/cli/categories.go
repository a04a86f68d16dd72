package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
)

func newCategoriesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "Gestionar categorías",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Listar categorías",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.workspace()
			if err != nil {
				return err
			}
			s := ws.Categories
			if err := s.Load(cmd.Context()); err != nil {
				return app.report(s.Status(), err)
			}
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNOMBRE\tDESCRIPCIÓN")
			for _, c := range s.Store().Items() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, c.Description)
			}
			return tw.Flush()
		},
	})

	var name, description string
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear categoría",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.workspace()
			if err != nil {
				return err
			}
			s := ws.Categories
			s.New()
			if err := setFlags(cmd, s, map[string]string{"name": name, "description": description}); err != nil {
				return err
			}
			err = s.Submit(cmd.Context())
			return app.report(s.Status(), err)
		},
	}
	create.Flags().StringVar(&name, "name", "", "nombre (obligatorio)")
	create.Flags().StringVar(&description, "description", "", "descripción")
	cmd.AddCommand(create)

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualizar categoría (solo los campos indicados)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := app.workspace()
			if err != nil {
				return err
			}
			s := ws.Categories
			if err := s.Load(cmd.Context()); err != nil {
				return app.report(s.Status(), err)
			}
			if err := s.Edit(entity.ID(args[0])); err != nil {
				return fmt.Errorf("categoría %s: %w", args[0], err)
			}
			if err := setFlags(cmd, s, map[string]string{"name": name, "description": description}); err != nil {
				return err
			}
			err = s.Submit(cmd.Context())
			return app.report(s.Status(), err)
		},
	}
	update.Flags().StringVar(&name, "name", "", "nombre")
	update.Flags().StringVar(&description, "description", "", "descripción")
	cmd.AddCommand(update)

	cmd.AddCommand(newDeleteCommand(app, "categoría", func() (deleter, error) {
		ws, err := app.workspace()
		if err != nil {
			return nil, err
		}
		return ws.Categories, nil
	}))
	return cmd
}
