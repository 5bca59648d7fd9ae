package dto

// ErrorResponse cuerpo estándar de error para la capa HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
