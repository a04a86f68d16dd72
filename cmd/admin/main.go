package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/console"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/gateway"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/metrics"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/pdf"
	"github.com/JakesDourado/Cadastro-FNR/internal/interfaces/admin"
	"github.com/JakesDourado/Cadastro-FNR/pkg/config"
	"github.com/JakesDourado/Cadastro-FNR/pkg/format"
	"github.com/JakesDourado/Cadastro-FNR/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.Gateway.BaseURL).
		Msg("iniciando consola de administración")

	collector := metrics.New("cadastro_admin")
	gw := gateway.New(cfg.Gateway, gateway.WithMetrics(collector), gateway.WithLogger(log))

	sessions := admin.NewSessions(cfg.Admin.SessionCookie, cfg.Admin.SessionTTL, func() *console.Workspace {
		return console.NewWorkspace(gw, log)
	})
	prices := format.NewPrice(cfg.Admin.Locale)

	app, err := admin.NewApp(admin.Deps{
		AppName:  cfg.App.Name,
		Sessions: sessions,
		Prices:   prices,
		Report:   pdf.NewCatalogReport(prices),
		Metrics:  collector,
		Log:      log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("construir consola")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go sessions.Run(ctx, time.Minute)

	go func() {
		if err := app.Listen(cfg.Admin.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando consola...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
