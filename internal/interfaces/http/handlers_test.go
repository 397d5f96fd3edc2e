package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/application/sheet"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
	apphttp "github.com/jhoicas/weinrechner/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubGenerator struct{ last *sheet.Sheet }

func (s *stubGenerator) GenerateSheet(_ context.Context, sh *sheet.Sheet) ([]byte, error) {
	s.last = sh
	return []byte("%PDF-stub"), nil
}

func buildTestApp(t *testing.T) (*fiber.App, *stubGenerator) {
	t.Helper()
	calc := usecase.NewCalculatorUseCase(zerolog.Nop())
	gen := &stubGenerator{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CalculatorUC: calc,
		PreferenceUC: usecase.NewPreferenceUseCase(i18n.NewPreference("en")),
		SheetUC:      sheet.NewSheetUseCase(calc, gen),
		Log:          zerolog.Nop(),
	})
	return app, gen
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculadoras
// ──────────────────────────────────────────────────────────────────────────────

func TestConvertAlcohol_200(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/alcohol/convert", dto.AlcoholConvertRequest{GL: "100", Vol: "abc"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.AlcoholConvertResponse
	decode(t, resp, &out)
	assert.Equal(t, "12,67", out.VolDisplay)
	assert.Nil(t, out.GL, "entrada inválida deja el resultado vacío")
}

func TestConvertAlcohol_CuerpoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/alcohol/convert", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, "INVALID_BODY", out.Code)
}

func TestPercentSweetReserve_NA(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sweet-reserve/percent", dto.PercentSRRequest{Percent: "20", Liters: "100"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.PercentSRResponse
	decode(t, resp, &out)
	assert.Equal(t, "20,00", out.AufDisplay)
	assert.Equal(t, "25,00", out.InDisplay)
}

func TestAlligation_200(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sweet-reserve/alligation",
		dto.AlligationRequest{SRGL: "200", WineGL: "0", WineLiters: "100", TargetGL: "20"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.AlligationResponse
	decode(t, resp, &out)
	assert.Equal(t, "11,1111", out.SRLitersDisplay)
}

func TestAlligation_422ConMensajeTraducido(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sweet-reserve/alligation?lang=de",
		dto.AlligationRequest{SRGL: "20", WineGL: "5", WineLiters: "100", TargetGL: "20"})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, "VALIDATION", out.Code)
	require.Len(t, out.Fields, 1)
	assert.Equal(t, "ziel_gl", out.Fields[0].Field)
	assert.Equal(t, "g/l SR darf nicht gleich Ziel g/l sein", out.Fields[0].Message)
}

func TestBlend_DemasiadosLotes400(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/blend", dto.BlendRequest{Wines: make([]dto.BatchDTO, 6)})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBlend_422(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/blend", dto.BlendRequest{Wines: []dto.BatchDTO{
		{Liter: "10", Sugar: "-1", Alcohol: "0"},
	}})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ErrorResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Fields)
	assert.Equal(t, "wines[0].sugar", out.Fields[0].Field)
}

func TestCalculators_AcceptLanguage(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/calculators", nil, "Accept-Language", "de-DE,de;q=0.9")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []dto.CalculatorDTO
	decode(t, resp, &out)
	require.Len(t, out, 4)
	assert.Equal(t, "/srCalc", out[2].Route)
	assert.Equal(t, "SR Verschnittrechner", out[2].Title)
}

// ──────────────────────────────────────────────────────────────────────────────
// Hojas PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestSheet_PDF(t *testing.T) {
	app, gen := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sheets/percent", dto.PercentSRRequest{Percent: "10", Liters: "50"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "weinrechner-percent-")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(body))
	require.NotNil(t, gen.last)
}

func TestSheet_CalculadoraDesconocida404(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sheets/nope", map[string]string{})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSheet_ValidacionBloquea(t *testing.T) {
	app, gen := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sheets/alligation",
		dto.AlligationRequest{SRGL: "", WineGL: "5", WineLiters: "100", TargetGL: "20"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Nil(t, gen.last)
}

// ──────────────────────────────────────────────────────────────────────────────
// Preferencias
// ──────────────────────────────────────────────────────────────────────────────

func TestLanguage_PutGet(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/preferences/language", dto.LanguageRequest{Language: "ru"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/preferences/language", nil)
	var out dto.LanguageResponse
	decode(t, resp, &out)
	assert.Equal(t, "ru", out.Language)

	resp = doJSON(t, app, http.MethodGet, "/api/labels", nil)
	var labels i18n.Labels
	decode(t, resp, &labels)
	assert.Equal(t, i18n.RU, labels.Language)
}

func TestLanguage_NoSoportado(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPut, "/api/preferences/language", dto.LanguageRequest{Language: "fr"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, "UNSUPPORTED_LANGUAGE", out.Code)
}
