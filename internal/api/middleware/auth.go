package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/pkg/jwtauth"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
)

type contextKey string

const userContextKey contextKey = "auth_user"

// AuthUser данные аутентифицированного пользователя из токена
type AuthUser struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// TokenParser интерфейс проверки access-токенов
type TokenParser interface {
	Parse(tokenStr string) (*jwtauth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет заголовок Authorization и кладёт пользователя в контекст
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := parser.Parse(tokenStr)
			if err != nil {
				logger.Warn("auth middleware: token rejected: %v", err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				logger.Warn("auth middleware: malformed user id in token: %v", err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, &AuthUser{
				ID:    userID,
				Email: claims.Email,
				Role:  claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext возвращает пользователя, положенного middleware Auth
func UserFromContext(ctx context.Context) (*AuthUser, bool) {
	user, ok := ctx.Value(userContextKey).(*AuthUser)
	return user, ok
}
