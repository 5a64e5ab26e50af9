// @title        Mis Libros - API de prueba
// @version      1.0
// @description  API JSON sin autenticación ni validación. Solo disponible con APP_MODE=prueba.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mis-libros/docs"
	"github.com/jhoicas/mis-libros/internal/application/auth"
	"github.com/jhoicas/mis-libros/internal/application/usecase"
	"github.com/jhoicas/mis-libros/internal/domain/access"
	infrapdf "github.com/jhoicas/mis-libros/internal/infrastructure/pdf"
	"github.com/jhoicas/mis-libros/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/mis-libros/internal/interfaces/http"
	"github.com/jhoicas/mis-libros/pkg/config"
	"github.com/jhoicas/mis-libros/pkg/logger"
)

//go:generate swag init -g cmd/api/main.go -o docs -d ../../ --outputTypes go

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("mode", cfg.App.Mode).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	libroRepo := postgres.NewLibroRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var app *fiber.App
	switch cfg.App.Mode {
	case config.ModePrueba:
		log.Warn().Msg("MODO DE PRUEBA: la API /libros no tiene autenticación, verificación de propiedad ni validación")

		app = httpRouter.NewApp(httpRouter.AppOptions{Name: cfg.App.Name, Logger: log, JSON: true})
		health(app, cfg.App.Name)
		httpRouter.PruebaRouter(app, httpRouter.PruebaRouterDeps{
			PruebaUC: usecase.NewPruebaUseCase(libroRepo, txRunner),
			AppName:  cfg.App.Name,
		})

		// Swagger UI: http://localhost:<port>/docs, documento en /docs/doc.json
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FilePath:    "docs/doc.json",
			FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
			Path:        "docs",
			Title:       "Mis Libros - Modo de Prueba",
		}))

	default:
		policy, err := access.NewPolicy(cfg.Access.Visibility, cfg.Access.AdminRole)
		if err != nil {
			log.Fatal().Err(err).Msg("política de acceso")
		}
		userRepo := postgres.NewUserRepository(pool)
		roleRepo := postgres.NewRoleRepository(pool)

		authUC := auth.NewAuthUseCase(userRepo, roleRepo, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
		libroUC := usecase.NewLibroUseCase(libroRepo, txRunner, policy, infrapdf.NewMarotoLibrosPDF())
		userUC := usecase.NewUserUseCase(userRepo, policy)

		sessions := httpRouter.NewSessions(cfg.Session.CookieName, cfg.Session.Secure, cfg.JWT.Expiration)
		app = httpRouter.NewApp(httpRouter.AppOptions{Name: cfg.App.Name, Logger: log})
		health(app, cfg.App.Name)
		httpRouter.Router(app, httpRouter.RouterDeps{
			AuthUC:   authUC,
			LibroUC:  libroUC,
			UserUC:   userUC,
			Sessions: sessions,
			Pages:    httpRouter.NewPages(cfg.App.Name, sessions, policy),
			Forms:    httpRouter.NewFormValidator(),
		})
	}

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

func migrateUp(databaseURL string) error {
	m, err := postgres.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}

func health(app *fiber.App, name string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})
}
