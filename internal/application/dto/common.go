package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Fields  []FieldErrorDTO `json:"fields,omitempty"`
}

// FieldErrorDTO error de un campo de formulario ya traducido.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
