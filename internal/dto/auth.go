package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required" example:"helper"`
}

type RegisterResponseDTO struct {
	UserID string `json:"user_id" example:"6f1c0f44-9f1e-4f8a-9a3c-2b7d1d2e3f40"`
	Token  string `json:"token"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	UserID string `json:"user_id" example:"6f1c0f44-9f1e-4f8a-9a3c-2b7d1d2e3f40"`
	Role   string `json:"role" example:"helper"`
	Token  string `json:"token"`
}
