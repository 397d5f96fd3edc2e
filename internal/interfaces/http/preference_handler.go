package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
)

// PreferenceHandler idioma de la interfaz y catálogo de textos.
type PreferenceHandler struct {
	uc *usecase.PreferenceUseCase
}

// NewPreferenceHandler construye el handler.
func NewPreferenceHandler(uc *usecase.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

// GetLanguage godoc
// @Summary      Idioma actual de la interfaz
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.LanguageResponse
// @Router       /api/preferences/language [get]
func (h *PreferenceHandler) GetLanguage(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetLanguage())
}

// SetLanguage godoc
// @Summary      Cambiar el idioma de la interfaz
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LanguageRequest  true  "en, de o ru"
// @Success      200   {object}  dto.LanguageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/preferences/language [put]
func (h *PreferenceHandler) SetLanguage(c *fiber.Ctx) error {
	var in dto.LanguageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetLanguage(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Labels godoc
// @Summary      Catálogo de textos
// @Description  Idioma: ?lang=, luego Accept-Language, luego la preferencia actual.
// @Tags         preferences
// @Produce      json
// @Param        lang  query  string  false  "en, de o ru"
// @Success      200   {object}  i18n.Labels
// @Router       /api/labels [get]
func (h *PreferenceHandler) Labels(c *fiber.Ctx) error {
	return c.JSON(h.uc.Labels(requestLanguage(c, h.uc)))
}

// requestLanguage idioma de la petición (?lang=, Accept-Language, preferencia).
func requestLanguage(c *fiber.Ctx, pref *usecase.PreferenceUseCase) i18n.Language {
	return pref.Resolve(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
}
