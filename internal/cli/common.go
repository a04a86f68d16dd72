package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/console"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/entity"
)

type fieldSetter interface {
	SetField(name, value string) error
}

// setFlags copia al borrador los flags indicados explícitamente por el usuario.
// Las claves del mapa son los nombres de campo y de flag (salvo "categoryId" -> --category-id).
func setFlags(cmd *cobra.Command, s fieldSetter, values map[string]string) error {
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, field := range names {
		if !cmd.Flags().Changed(flagName(field)) {
			continue
		}
		if err := s.SetField(field, values[field]); err != nil {
			return err
		}
	}
	return nil
}

func flagName(field string) string {
	if field == "categoryId" {
		return "category-id"
	}
	return field
}

type deleter interface {
	Load(ctx context.Context) error
	Delete(ctx context.Context, id entity.ID, confirm console.Confirm) error
	Status() console.Status
}

func newDeleteCommand(app *App, label string, screen func() (deleter, error)) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Eliminar %s (pide confirmación)", label),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := screen()
			if err != nil {
				return err
			}
			if err := s.Load(cmd.Context()); err != nil {
				return app.report(s.Status(), err)
			}
			err = s.Delete(cmd.Context(), entity.ID(args[0]), app.confirm(yes))
			return app.report(s.Status(), err)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no pedir confirmación")
	return cmd
}
