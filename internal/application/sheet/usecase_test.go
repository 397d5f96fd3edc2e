package sheet_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/application/sheet"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
)

// fakeGenerator guarda la última hoja recibida.
type fakeGenerator struct {
	last *sheet.Sheet
	err  error
}

func (f *fakeGenerator) GenerateSheet(_ context.Context, s *sheet.Sheet) ([]byte, error) {
	f.last = s
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func newSheetUC(gen sheet.SheetPDFGenerator) *sheet.SheetUseCase {
	return sheet.NewSheetUseCase(usecase.NewCalculatorUseCase(zerolog.Nop()), gen)
}

func TestAlligationSheet_ContenidoYNombre(t *testing.T) {
	gen := &fakeGenerator{}
	out, name, err := newSheetUC(gen).Alligation(context.Background(), i18n.DE, dto.AlligationRequest{
		SRGL: "200", WineGL: "0", WineLiters: "100", TargetGL: "20",
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.True(t, strings.HasPrefix(name, "weinrechner-alligation-"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	require.NotNil(t, gen.last)
	assert.Equal(t, "SR Verschnittrechner", gen.last.Title)
	assert.Equal(t, "Eingabe", gen.last.InputsTitle)
	assert.Equal(t, "Ergebnis", gen.last.ResultsTitle)
	require.Len(t, gen.last.Results, 2)
	assert.Equal(t, "11,1111", gen.last.Results[0].Value)
	assert.Equal(t, "111,1111", gen.last.Results[1].Value)
	assert.Equal(t, "0", gen.last.Inputs[1].Value)
	assert.NotEmpty(t, gen.last.ID)
}

func TestAlligationSheet_ValidacionBloquea(t *testing.T) {
	gen := &fakeGenerator{}
	_, _, err := newSheetUC(gen).Alligation(context.Background(), i18n.EN, dto.AlligationRequest{
		SRGL: "20", WineGL: "5", WineLiters: "100", TargetGL: "20",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Nil(t, gen.last, "no se debe generar PDF con errores")
}

func TestBlendSheet_SoloLotesConDatos(t *testing.T) {
	gen := &fakeGenerator{}
	_, _, err := newSheetUC(gen).Blend(context.Background(), i18n.EN, dto.BlendRequest{Wines: []dto.BatchDTO{
		{Liter: "10", Sugar: "50", Alcohol: "100"},
		{},
		{Liter: "10", Sugar: "30", Alcohol: "80"},
	}})
	require.NoError(t, err)
	assert.Len(t, gen.last.Inputs, 6)
	assert.Equal(t, "40,00", gen.last.Results[1].Value)
}

func TestPercentSheet_YAlcohol(t *testing.T) {
	gen := &fakeGenerator{}
	uc := newSheetUC(gen)

	_, _, err := uc.Percent(context.Background(), i18n.EN, dto.PercentSRRequest{Percent: "20", Liters: "100"})
	require.NoError(t, err)
	assert.Equal(t, "20,00", gen.last.Results[0].Value)
	assert.Equal(t, "25,00", gen.last.Results[1].Value)

	_, _, err = uc.Alcohol(context.Background(), i18n.EN, dto.AlcoholConvertRequest{GL: "100"})
	require.NoError(t, err)
	assert.Equal(t, "12,67", gen.last.Results[0].Value)
	assert.Equal(t, "—", gen.last.Results[1].Value)
}

func TestSheet_TitulosDeSeccionPorIdioma(t *testing.T) {
	want := map[i18n.Language][2]string{
		i18n.EN: {"Input", "Output"},
		i18n.DE: {"Eingabe", "Ergebnis"},
		i18n.RU: {"Ввод", "Результат"},
	}
	for lang, titles := range want {
		gen := &fakeGenerator{}
		_, _, err := newSheetUC(gen).Alcohol(context.Background(), lang, dto.AlcoholConvertRequest{GL: "100"})
		require.NoError(t, err, lang)
		assert.Equal(t, titles[0], gen.last.InputsTitle, lang)
		assert.Equal(t, titles[1], gen.last.ResultsTitle, lang)
	}
}

func TestSheet_ErrorDelGenerador(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("disco lleno")}
	_, _, err := newSheetUC(gen).Percent(context.Background(), i18n.EN, dto.PercentSRRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disco lleno")
}
