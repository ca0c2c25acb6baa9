package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Stand-api/internal/application/analytics"
	"github.com/jhoicas/Stand-api/internal/application/auth"
	"github.com/jhoicas/Stand-api/internal/application/dto"
	"github.com/jhoicas/Stand-api/internal/application/usecase"
	"github.com/jhoicas/Stand-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StandUC   *usecase.StandUseCase
	ReportUC  *analytics.ReportUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
	AppName   string
}

// NewApp crea la aplicación Fiber con recover, log de peticiones y errores en formato dto.ErrorResponse.
// UnescapePath: los nombres de puesto y artículo pueden llevar espacios ("Lemons R Us").
func NewApp(appName string, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		UnescapePath: true,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))
	return app
}

// Router registra las rutas de la API. Lecturas públicas; escrituras con Bearer Token de operador.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	standHandler := NewStandHandler(deps.StandUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	operator := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleOperator)}

	stands := api.Group("/stands")

	// Consultas (público)
	stands.Get("/", standHandler.List)
	stands.Get("/:name", standHandler.Get)
	stands.Get("/:name/days/:day/items/:item", standHandler.SalesForDay)
	stands.Get("/:name/items/:item/sales", standHandler.TotalSales)
	stands.Get("/:name/items/:item/profit", standHandler.ItemProfit)
	stands.Get("/:name/profit", standHandler.StandProfit)

	// Reportes (público)
	stands.Get("/:name/report", reportHandler.Report)
	stands.Get("/:name/report.pdf", reportHandler.ReportPDF)
	stands.Get("/:name/report.xml", reportHandler.ReportXML)

	// Escrituras (operador)
	stands.Post("/", append(operator, standHandler.Create)...)
	stands.Put("/:name/menu", append(operator, standHandler.AddMenuItem)...)
	stands.Post("/:name/sales", append(operator, standHandler.EnterSales)...)
}
