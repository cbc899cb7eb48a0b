package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WarningResponse aviso no fatal (p. ej. reporte sin datos).
type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
