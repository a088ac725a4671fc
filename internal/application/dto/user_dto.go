package dto

// RegisterRequest entrada para registrar un usuario dentro de una empresa.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	CompanyID int64  `json:"company_id" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=admin bodeguero vendedor"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse representación pública de un usuario (sin hash).
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CompanyID int64  `json:"company_id"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

// LoginResponse token emitido más los datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
