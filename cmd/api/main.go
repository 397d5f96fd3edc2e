// @title           Weinrechner API
// @version         1.0
// @description     Calculadoras de bodega: conversión de alcohol, reserva dulce por porcentaje, regla de mezcla y media ponderada de lotes.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	_ "github.com/jhoicas/weinrechner/docs"
	"github.com/jhoicas/weinrechner/internal/application/sheet"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
	infrapdf "github.com/jhoicas/weinrechner/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/weinrechner/internal/interfaces/http"
	"github.com/jhoicas/weinrechner/pkg/config"
	"github.com/jhoicas/weinrechner/pkg/logger"
)

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
		Msg("iniciando aplicación")

	if _, err := i18n.ParseLanguage(cfg.I18n.DefaultLanguage); err != nil {
		log.Warn().Err(err).Msg("DEFAULT_LANGUAGE inválido, se usa en")
	}
	pref := i18n.NewPreference(cfg.I18n.DefaultLanguage)

	calculatorUC := usecase.NewCalculatorUseCase(log.Zerolog())
	preferenceUC := usecase.NewPreferenceUseCase(pref)

	// PDF: hoja imprimible de cada calculadora
	pdfGenerator := infrapdf.NewMarotoSheetGenerator(cfg.App.Name)
	sheetUC := sheet.NewSheetUseCase(calculatorUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerPath,
			Path:     "docs",
			Title:    "Weinrechner API",
		}))
	} else {
		log.Warn().Str("path", cfg.Docs.SwaggerPath).Msg("swagger.json no encontrado, /docs desactivado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CalculatorUC: calculatorUC,
		PreferenceUC: preferenceUC,
		SheetUC:      sheetUC,
		Log:          log.Zerolog(),
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
