package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Stand-api/docs"
	"github.com/jhoicas/Stand-api/internal/application/analytics"
	"github.com/jhoicas/Stand-api/internal/application/auth"
	"github.com/jhoicas/Stand-api/internal/application/usecase"
	"github.com/jhoicas/Stand-api/internal/domain/repository"
	"github.com/jhoicas/Stand-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Stand-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Stand-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Stand-api/internal/infrastructure/xmlreport"
	httpRouter "github.com/jhoicas/Stand-api/internal/interfaces/http"
	"github.com/jhoicas/Stand-api/pkg/config"
	"github.com/jhoicas/Stand-api/pkg/logger"
	"github.com/jhoicas/Stand-api/pkg/money"
)

// @title                       Stand API
// @version                     1.0
// @description                 API del puesto de limonada: menú, ventas diarias, ganancias y reportes.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	// stand-api hash-password <password>: imprime el valor para OPERATOR_PASSWORD_HASH.
	if len(os.Args) == 3 && os.Args[1] == "hash-password" {
		hash, err := auth.HashPassword(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" || cfg.Operator.PasswordHash == "" {
		log.Warn().Msg("JWT_SECRET u OPERATOR_PASSWORD_HASH vacíos: las escrituras quedan deshabilitadas")
	}

	ctx := context.Background()
	repo, closeRepo := openStorage(ctx, cfg, log.Component("storage"))
	defer closeRepo()

	format := money.NewFormatter(cfg.Report.Locale, cfg.Report.CurrencySymbol)
	standUC := usecase.NewStandUseCase(repo, format, log.Component("stands"))
	reportUC := analytics.NewReportUseCase(repo, format, infrapdf.NewMarotoReportGenerator(format), xmlreport.NewEtreeBuilder())
	authUC := auth.NewAuthUseCase(
		auth.Operator{User: cfg.Operator.User, PasswordHash: cfg.Operator.PasswordHash},
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
		log.Component("auth"),
	)

	app := httpRouter.NewApp(cfg.App.Name, log.Component("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stand API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		StandUC:   standUC,
		ReportUC:  reportUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
		AppName:   cfg.App.Name,
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

// openStorage elige el repositorio según STORAGE_DRIVER. Devuelve también la función de cierre.
func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.StandRepository, func()) {
	if cfg.Storage.Driver != config.StoragePostgres {
		log.Info().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return memory.NewStandRepository(), func() {}
	}

	if cfg.Storage.Migrate {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones PostgreSQL")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	return postgres.NewStandRepository(pool), pool.Close
}
