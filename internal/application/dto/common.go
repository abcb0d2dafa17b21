package dto

// ErrorResponse cuerpo de error HTTP. Message lleva la clave de mensaje que
// traduce la UI (p. ej. "validations.not-authorized"); Details los mensajes
// por campo cuando la falla es de validación.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// UserRefResponse referencia reducida de usuario para campos de auditoría.
type UserRefResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
