package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y la proyección pública del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// BootstrapRequest alta del primer administrador. Secret también puede venir
// como query param ?secret= según el modo de despliegue.
type BootstrapRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Password string `json:"password" validate:"required,min=4"`
	Secret   string `json:"secret"`
}

// ResetPasswordRequest herramienta de desarrollo: restablecer password por email.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}
