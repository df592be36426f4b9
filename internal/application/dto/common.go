package dto

// Response envelope estable para TODAS las respuestas de la API,
// en éxito y en error: {success, data?, error?, message?, details?}.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Details []string    `json:"details,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// OK construye una respuesta de éxito con data.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage construye una respuesta de éxito con data y mensaje.
func OKMessage(data interface{}, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// OKList construye una respuesta de éxito para listados, con count.
func OKList(data interface{}, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

// Fail construye una respuesta de error.
func Fail(errMsg string) Response {
	return Response{Success: false, Error: errMsg}
}

// FailDetails construye una respuesta de error con detalles (p. ej. reglas
// de validación violadas).
func FailDetails(errMsg string, details []string) Response {
	return Response{Success: false, Error: errMsg, Details: details}
}
