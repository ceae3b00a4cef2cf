package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole роль пользователя
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User учётная запись для аутентификации
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}
