package dto

// FechaLayout formato de fechas en la API (solo fecha, sin hora ni zona).
const FechaLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación simple (deletes).
type MessageResponse struct {
	Message string `json:"message"`
}
