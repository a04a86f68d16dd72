package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/JakesDourado/Cadastro-FNR/internal/application/usecase"
	"github.com/JakesDourado/Cadastro-FNR/internal/domain/repository"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/metrics"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/postgres"
	"github.com/JakesDourado/Cadastro-FNR/internal/infrastructure/sqlite"
	httpRouter "github.com/JakesDourado/Cadastro-FNR/internal/interfaces/http"
	"github.com/JakesDourado/Cadastro-FNR/pkg/config"
	"github.com/JakesDourado/Cadastro-FNR/pkg/logger"
)

type repositories struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	close      func()
}

// openRepositories elige el almacenamiento según DB_DRIVER y crea el esquema si falta.
func openRepositories(ctx context.Context, cfg config.DBConfig) (*repositories, error) {
	if cfg.Driver == "sqlite" {
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &repositories{
			categories: sqlite.NewCategoryRepository(db),
			products:   sqlite.NewProductRepository(db),
			close:      func() { _ = db.Close() },
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &repositories{
		categories: postgres.NewCategoryRepository(pool),
		products:   postgres.NewProductRepository(pool),
		close:      pool.Close,
	}, nil
}

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
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando API de catálogo")

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a la base de datos")
	}
	defer repos.close()

	categoryUC := usecase.NewCategoryUseCase(repos.categories)
	productUC := usecase.NewProductUseCase(repos.products, repos.categories)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.Docs.SwaggerFile != "" {
		if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Docs.SwaggerFile,
				Path:     "docs",
				Title:    "Cadastro API",
			}))
		} else {
			log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger no disponible")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		Log:         log.Named("api"),
		Metrics:     metrics.New("cadastro_api"),
		ServiceName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
