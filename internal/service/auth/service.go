package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/auth/models"
)

const minPasswordLength = 6

// Service сервис регистрации и аутентификации пользователей
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register создаёт нового пользователя с хешированным паролем
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.UserRole(req.Role)
		if role != domain.RoleUser && role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("auth.Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			s.logger.Warn("auth.Register: email already taken: %s", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("auth.Register: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("auth.Register: user registered: id=%s role=%s", created.ID, created.Role)
	return models.FromDomainUser(created), nil
}

// Login проверяет пару email/пароль и выпускает access-токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("auth.Login: failed to fetch user: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("auth.Login: wrong password for user %s", u.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID, u.Email, string(u.Role))
	if err != nil {
		s.logger.Error("auth.Login: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &models.LoginResponse{
		User:  *models.FromDomainUser(u),
		Token: token,
	}, nil
}
