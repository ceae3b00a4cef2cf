package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/auth/models"
)

type mockUserRepo struct {
	createFn     func(ctx context.Context, u *domain.User) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return m.createFn(ctx, u)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

type mockTokenIssuer struct {
	generateFn func(userID uuid.UUID, email, role string) (string, error)
}

func (m *mockTokenIssuer) Generate(userID uuid.UUID, email, role string) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(userID, email, role)
	}
	return "token-" + userID.String(), nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestRegister(t *testing.T) {
	t.Run("успешная регистрация с хешированием пароля", func(t *testing.T) {
		var createdUser *domain.User

		repo := &mockUserRepo{
			createFn: func(ctx context.Context, u *domain.User) (*domain.User, error) {
				created := *u
				created.ID = uuid.New()
				createdUser = &created
				return &created, nil
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, nopLogger{})
		resp, err := svc.Register(context.Background(), &models.RegisterRequest{
			Email:    "Asha@Example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		// Email нормализуется, роль по умолчанию user
		assert.Equal(t, "asha@example.com", resp.Email)
		assert.Equal(t, string(domain.RoleUser), resp.Role)

		// Пароль хранится как bcrypt хеш
		assert.NotEqual(t, "secret123", createdUser.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.PasswordHash), []byte("secret123")))
	})

	t.Run("email уже занят", func(t *testing.T) {
		repo := &mockUserRepo{
			createFn: func(ctx context.Context, u *domain.User) (*domain.User, error) {
				return nil, userRepo.ErrEmailTaken
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, nopLogger{})
		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Email:    "asha@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("короткий пароль", func(t *testing.T) {
		svc := NewService(&mockUserRepo{}, &mockTokenIssuer{}, nopLogger{})
		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Email:    "asha@example.com",
			Password: "123",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("неизвестная роль", func(t *testing.T) {
		svc := NewService(&mockUserRepo{}, &mockTokenIssuer{}, nopLogger{})
		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Email:    "asha@example.com",
			Password: "secret123",
			Role:     "superuser",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("роль admin разрешена", func(t *testing.T) {
		repo := &mockUserRepo{
			createFn: func(ctx context.Context, u *domain.User) (*domain.User, error) {
				created := *u
				created.ID = uuid.New()
				return &created, nil
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, nopLogger{})
		resp, err := svc.Register(context.Background(), &models.RegisterRequest{
			Email:    "root@example.com",
			Password: "secret123",
			Role:     "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleAdmin), resp.Role)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	existing := &domain.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	t.Run("успешный вход выдаёт токен", func(t *testing.T) {
		repo := &mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return existing, nil
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, nopLogger{})
		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "asha@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, "token-"+existing.ID.String(), resp.Token)
		assert.Equal(t, existing.ID, resp.User.ID)
	})

	t.Run("неверный пароль", func(t *testing.T) {
		repo := &mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return existing, nil
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, nopLogger{})
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "asha@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("пользователь не найден", func(t *testing.T) {
		repo := &mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, userRepo.ErrUserNotFound
			},
		}

		svc := NewService(repo, &mockTokenIssuer{}, nopLogger{})
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "ghost@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
