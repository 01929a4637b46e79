package dto

// LoginRequest código de acceso de caja.
type LoginRequest struct {
	Passcode string `json:"passcode" validate:"required,min=4,max=64"`
}

// UserResponse operador autenticado.
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Session string `json:"session_id"`
}

// LoginResponse token JWT y datos del operador.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
