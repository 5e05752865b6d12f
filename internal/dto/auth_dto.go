package dto

type LoginRequest struct {
	Operator string `json:"operator" validate:"required"`
	Pin      string `json:"pin" validate:"required"`
	Station  string `json:"station"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
