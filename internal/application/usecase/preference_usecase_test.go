package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
)

func TestPreference_GetSet(t *testing.T) {
	uc := usecase.NewPreferenceUseCase(i18n.NewPreference(""))
	assert.Equal(t, "en", uc.GetLanguage().Language)
	assert.Equal(t, []string{"en", "de", "ru"}, uc.GetLanguage().Supported)

	out, err := uc.SetLanguage(dto.LanguageRequest{Language: "ru"})
	require.NoError(t, err)
	assert.Equal(t, "ru", out.Language)

	_, err = uc.SetLanguage(dto.LanguageRequest{Language: "xx"})
	assert.Error(t, err)
	assert.Equal(t, "ru", uc.GetLanguage().Language)
}

func TestPreference_Resolve(t *testing.T) {
	uc := usecase.NewPreferenceUseCase(i18n.NewPreference("de"))
	assert.Equal(t, i18n.RU, uc.Resolve("ru", "en-US"), "el parámetro explícito gana")
	assert.Equal(t, i18n.EN, uc.Resolve("", "en-US,en;q=0.9"))
	assert.Equal(t, i18n.DE, uc.Resolve("", ""), "sin datos se usa la preferencia")
	assert.Equal(t, i18n.DE, uc.Resolve("zz", ""), "un idioma inválido se ignora")
}
