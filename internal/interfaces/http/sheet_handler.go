package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/application/sheet"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain/cellar"
)

// SheetHandler descarga de hojas PDF.
type SheetHandler struct {
	uc   *sheet.SheetUseCase
	pref *usecase.PreferenceUseCase
}

// NewSheetHandler construye el handler.
func NewSheetHandler(uc *sheet.SheetUseCase, pref *usecase.PreferenceUseCase) *SheetHandler {
	return &SheetHandler{uc: uc, pref: pref}
}

// Download godoc
// @Summary      Hoja PDF de una calculadora
// @Description  El cuerpo es el mismo que el de la calculadora correspondiente.
// @Tags         sheets
// @Accept       json
// @Produce      application/pdf
// @Param        calculator  path  string  true  "alcohol | percent | alligation | blend"
// @Param        lang        query string  false "en, de o ru"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sheets/{calculator} [post]
func (h *SheetHandler) Download(c *fiber.Ctx) error {
	calc, err := cellar.Lookup(c.Params("calculator"))
	if err != nil {
		return writeError(c, err)
	}
	lang := requestLanguage(c, h.pref)
	ctx := c.UserContext()

	var (
		pdfBytes []byte
		filename string
	)
	switch calc.ID {
	case cellar.CalcAlcohol:
		var in dto.AlcoholConvertRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		pdfBytes, filename, err = h.uc.Alcohol(ctx, lang, in)
	case cellar.CalcPercent:
		var in dto.PercentSRRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		pdfBytes, filename, err = h.uc.Percent(ctx, lang, in)
	case cellar.CalcAlligation:
		var in dto.AlligationRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		pdfBytes, filename, err = h.uc.Alligation(ctx, lang, in)
	case cellar.CalcBlend:
		var in dto.BlendRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		pdfBytes, filename, err = h.uc.Blend(ctx, lang, in)
	}
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
