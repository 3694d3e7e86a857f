package dto

// CreateUserRequest alta de operador del terminal.
type CreateUserRequest struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	AccessCode string `json:"access_code"`
}

// UpdateUserRequest actualización parcial tipada (nil = sin cambio).
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	AccessCode *string `json:"access_code"`
}

// UserResponse respuesta de usuario. No expone el código de acceso.
type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoginRequest login por PIN del terminal.
type LoginRequest struct {
	AccessCode string `json:"access_code"`
}
