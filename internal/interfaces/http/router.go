package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/weinrechner/internal/application/sheet"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CalculatorUC *usecase.CalculatorUseCase
	PreferenceUC *usecase.PreferenceUseCase
	SheetUC      *sheet.SheetUseCase
	Log          zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log))

	calcHandler := NewCalculatorHandler(deps.CalculatorUC, deps.PreferenceUC)
	api.Get("/calculators", calcHandler.List)

	// Conversores (se recalculan con cada pulsación en el cliente)
	api.Post("/alcohol/convert", calcHandler.ConvertAlcohol)
	api.Post("/sweet-reserve/percent", calcHandler.PercentSweetReserve)

	// Calculadoras con envío (422 si la validación bloquea)
	api.Post("/sweet-reserve/alligation", calcHandler.AlligateSweetReserve)
	api.Post("/blend", calcHandler.BlendBatches)

	// Hojas PDF
	if deps.SheetUC != nil {
		sheetHandler := NewSheetHandler(deps.SheetUC, deps.PreferenceUC)
		api.Post("/sheets/:calculator", sheetHandler.Download)
	}

	// Preferencias e i18n
	prefHandler := NewPreferenceHandler(deps.PreferenceUC)
	prefs := api.Group("/preferences")
	prefs.Get("/language", prefHandler.GetLanguage)
	prefs.Put("/language", prefHandler.SetLanguage)
	api.Get("/labels", prefHandler.Labels)
}
