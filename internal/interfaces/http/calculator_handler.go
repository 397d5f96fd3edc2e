package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain"
)

// CalculatorHandler maneja las peticiones HTTP de las calculadoras.
type CalculatorHandler struct {
	uc   *usecase.CalculatorUseCase
	pref *usecase.PreferenceUseCase
}

// NewCalculatorHandler construye el handler.
func NewCalculatorHandler(uc *usecase.CalculatorUseCase, pref *usecase.PreferenceUseCase) *CalculatorHandler {
	return &CalculatorHandler{uc: uc, pref: pref}
}

// List godoc
// @Summary      Listar calculadoras
// @Description  Ruta de navegación y disparador ("input" = cada pulsación, "submit" = al enviar).
// @Tags         calculators
// @Produce      json
// @Param        lang  query  string  false  "Idioma de los títulos (en, de, ru)"
// @Success      200   {array}  dto.CalculatorDTO
// @Router       /api/calculators [get]
func (h *CalculatorHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.Calculators(requestLanguage(c, h.pref)))
}

// ConvertAlcohol godoc
// @Summary      Conversión g/l <-> % vol
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AlcoholConvertRequest  true  "Entradas de texto"
// @Success      200   {object}  dto.AlcoholConvertResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alcohol/convert [post]
func (h *CalculatorHandler) ConvertAlcohol(c *fiber.Ctx) error {
	var in dto.AlcoholConvertRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.ConvertAlcohol(in))
}

// PercentSweetReserve godoc
// @Summary      Reserva dulce por porcentaje (% auf / % in)
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PercentSRRequest  true  "Porcentaje y litros"
// @Success      200   {object}  dto.PercentSRResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sweet-reserve/percent [post]
func (h *CalculatorHandler) PercentSweetReserve(c *fiber.Ctx) error {
	var in dto.PercentSRRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.PercentSweetReserve(in))
}

// AlligateSweetReserve godoc
// @Summary      Reserva dulce por regla de mezcla
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AlligationRequest  true  "g/l SR, g/l vino, litros vino, g/l objetivo"
// @Success      200   {object}  dto.AlligationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sweet-reserve/alligation [post]
func (h *CalculatorHandler) AlligateSweetReserve(c *fiber.Ctx) error {
	var in dto.AlligationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AlligateSweetReserve(requestLanguage(c, h.pref), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// BlendBatches godoc
// @Summary      Media ponderada de hasta cinco lotes
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BlendRequest  true  "Lotes"
// @Success      200   {object}  dto.BlendResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/blend [post]
func (h *CalculatorHandler) BlendBatches(c *fiber.Ctx) error {
	var in dto.BlendRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.BlendBatches(requestLanguage(c, h.pref), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// writeError traduce errores de aplicación a dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: domain.ErrValidation.Error(), Fields: verr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownCalculator):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnsupportedLanguage):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_LANGUAGE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
