// Package i18n preferencia de idioma de la interfaz y catálogo de textos.
// El motor de cálculo no depende de este paquete: el idioma solo afecta a
// etiquetas y mensajes.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/jhoicas/weinrechner/internal/domain"
)

// Language idioma soportado por la interfaz.
type Language string

const (
	EN Language = "en"
	DE Language = "de"
	RU Language = "ru"
)

// Default idioma inicial.
const Default = EN

// Supported idiomas en orden de preferencia del matcher (el primero es el de respaldo).
var Supported = []Language{EN, DE, RU}

var matcher = language.NewMatcher([]language.Tag{language.English, language.German, language.Russian})

// ParseLanguage valida un código de idioma ("en", "de", "ru"; admite "de-AT" etc.).
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("%w: vacío", domain.ErrUnsupportedLanguage)
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, s)
	}
	base, _ := tag.Base()
	for _, l := range Supported {
		if base.String() == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, s)
}

// Match elige el mejor idioma soportado para una cabecera Accept-Language.
// Sin coincidencia devuelve fallback.
func Match(acceptLanguage string, fallback Language) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}

// Preference preferencia de idioma a nivel de proceso. Se inicializa de forma
// explícita con Init y solo cambia con Set.
type Preference struct {
	mu   sync.RWMutex
	lang Language
}

// NewPreference crea la preferencia con el idioma indicado (o Default si es inválido).
func NewPreference(initial string) *Preference {
	p := &Preference{}
	p.Init(initial)
	return p
}

// Init fija el idioma inicial; un valor no soportado deja Default.
func (p *Preference) Init(initial string) {
	lang, err := ParseLanguage(initial)
	if err != nil {
		lang = Default
	}
	p.mu.Lock()
	p.lang = lang
	p.mu.Unlock()
}

// Get devuelve el idioma actual.
func (p *Preference) Get() Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.lang == "" {
		return Default
	}
	return p.lang
}

// Set cambia el idioma actual.
func (p *Preference) Set(s string) (Language, error) {
	lang, err := ParseLanguage(s)
	if err != nil {
		return "", err
	}
	p.mu.Lock()
	p.lang = lang
	p.mu.Unlock()
	return lang, nil
}
