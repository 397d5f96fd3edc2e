package usecase

import (
	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
)

// PreferenceUseCase lectura y cambio del idioma de la interfaz.
type PreferenceUseCase struct {
	pref *i18n.Preference
}

// NewPreferenceUseCase construye el caso de uso.
func NewPreferenceUseCase(pref *i18n.Preference) *PreferenceUseCase {
	return &PreferenceUseCase{pref: pref}
}

// GetLanguage devuelve el idioma actual.
func (uc *PreferenceUseCase) GetLanguage() dto.LanguageResponse {
	return toLanguageResponse(uc.pref.Get())
}

// SetLanguage cambia el idioma del proceso.
func (uc *PreferenceUseCase) SetLanguage(in dto.LanguageRequest) (dto.LanguageResponse, error) {
	lang, err := uc.pref.Set(in.Language)
	if err != nil {
		return dto.LanguageResponse{}, err
	}
	return toLanguageResponse(lang), nil
}

// Resolve idioma de una petición: parámetro explícito, luego Accept-Language,
// luego la preferencia del proceso.
func (uc *PreferenceUseCase) Resolve(explicit, acceptLanguage string) i18n.Language {
	if explicit != "" {
		if lang, err := i18n.ParseLanguage(explicit); err == nil {
			return lang
		}
	}
	current := uc.pref.Get()
	if acceptLanguage == "" {
		return current
	}
	return i18n.Match(acceptLanguage, current)
}

// Labels catálogo de textos del idioma.
func (uc *PreferenceUseCase) Labels(lang i18n.Language) i18n.Labels {
	return i18n.Catalog(lang)
}

func toLanguageResponse(lang i18n.Language) dto.LanguageResponse {
	supported := make([]string, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		supported = append(supported, string(l))
	}
	return dto.LanguageResponse{Language: string(lang), Supported: supported}
}
