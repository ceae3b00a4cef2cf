package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Email    string
	Password string
	Role     string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string
	Password string
}

// UserResponse данные пользователя без хеша пароля
type UserResponse struct {
	ID        uuid.UUID
	Email     string
	Role      string
	CreatedAt time.Time
}

// LoginResponse результат входа: пользователь и access-токен
type LoginResponse struct {
	User  UserResponse
	Token string
}

// FromDomainUser конвертирует доменного пользователя в ответ сервиса
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
