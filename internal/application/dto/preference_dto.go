package dto

// LanguageRequest cambio de idioma.
type LanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en de ru"`
}

// LanguageResponse idioma actual.
type LanguageResponse struct {
	Language  string   `json:"language"`
	Supported []string `json:"supported"`
}
