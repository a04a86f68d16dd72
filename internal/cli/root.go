// Package cli comandos de cadastroctl: la misma lógica de pantallas de la consola,
// operada desde la terminal.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/console"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/gateway"
	"github.com/JakesDourado/Cadastro-FNR/pkg/config"
	"github.com/JakesDourado/Cadastro-FNR/pkg/format"
	"github.com/JakesDourado/Cadastro-FNR/pkg/logger"
)

// App entrada/salida y fábrica del Workspace. Los tests la construyen a mano.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Prices *format.Price
	// Workspace construye las pantallas contra baseURL ("" = la configurada).
	Workspace func(baseURL string, timeout time.Duration) (*console.Workspace, error)

	baseURL string
	timeout time.Duration
	ws      *console.Workspace
}

// workspace se construye una sola vez por ejecución, después de leer los flags.
func (a *App) workspace() (*console.Workspace, error) {
	if a.ws != nil {
		return a.ws, nil
	}
	ws, err := a.Workspace(a.baseURL, a.timeout)
	if err != nil {
		return nil, err
	}
	a.ws = ws
	return ws, nil
}

// confirm pregunta en la terminal; solo "s", "si", "sí", "y" o "yes" confirman.
func (a *App) confirm(yes bool) console.Confirm {
	if yes {
		return console.Accept
	}
	return func(prompt string) bool {
		fmt.Fprintf(a.Out, "%s [s/N]: ", prompt)
		line, _ := bufio.NewReader(a.In).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "s", "si", "sí", "y", "yes":
			return true
		}
		return false
	}
}

// report traduce el resultado de una operación de pantalla a salida de terminal.
func (a *App) report(status console.Status, err error) error {
	var vErr *domain.ValidationError
	switch {
	case err == nil:
		if status.Message != "" {
			fmt.Fprintln(a.Out, status.Message)
		}
		return nil
	case errors.Is(err, domain.ErrDeleteDeclined):
		fmt.Fprintln(a.Out, "Operación cancelada")
		return nil
	case errors.As(err, &vErr):
		for _, f := range vErr.Fields.Fields() {
			fmt.Fprintf(a.Err, "  %s: %s\n", f, vErr.Fields[f])
		}
		return fmt.Errorf("datos inválidos")
	default:
		if status.Message != "" {
			return errors.New(status.Message)
		}
		return err
	}
}

// NewRootCommand arma el árbol de comandos.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cadastroctl",
		Short:         "Administración de categorías y productos del catálogo",
		Long:          "cadastroctl opera el catálogo a través de la API REST: listar, crear, actualizar, eliminar e importar.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.baseURL, "api", "", "URL base de la API (por defecto API_BASE_URL)")
	root.PersistentFlags().DurationVar(&app.timeout, "timeout", 0, "timeout por petición (por defecto API_TIMEOUT_SECONDS)")
	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	root.AddCommand(newCategoriesCommand(app))
	root.AddCommand(newProductsCommand(app))
	root.AddCommand(newImportCommand(app))
	return root
}

// Execute punto de entrada de cmd/cadastroctl.
func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})
	app := &App{
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
		Prices: format.NewPrice(cfg.Admin.Locale),
		Workspace: func(baseURL string, timeout time.Duration) (*console.Workspace, error) {
			gwCfg := cfg.Gateway
			if baseURL != "" {
				gwCfg.BaseURL = strings.TrimRight(baseURL, "/")
			}
			if timeout > 0 {
				gwCfg.Timeout = timeout
			}
			return console.NewWorkspace(gateway.New(gwCfg, gateway.WithLogger(log)), log), nil
		},
	}
	root := NewRootCommand(app)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
