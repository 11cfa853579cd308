package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/PalakRajput2/real-estate/internal/domain"
	"github.com/PalakRajput2/real-estate/internal/repository"
)

// AuthService coordina registro y autenticación de usuarios.
type AuthService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	limiter LoginRateLimiter
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserTaken          = errors.New("username or email already taken")
	ErrInvalidInput       = errors.New("invalid input")
	ErrRateLimited        = errors.New("rate limited")
)

// bcryptCost replica el factor de costo del servicio original.
const bcryptCost = 10

func NewAuthService(logger *zap.Logger, users repository.UserRepository, limiter LoginRateLimiter) *AuthService {
	return &AuthService{
		logger:  logger,
		users:   users,
		limiter: limiter,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register crea un usuario nuevo con la contraseña hasheada.
// No inicia sesión: el registro no tiene efectos sobre cookies.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("auth service not configured")
	}

	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := strings.TrimSpace(input.Password)
	if username == "" || email == "" || password == "" {
		return domain.User{}, ErrInvalidInput
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  string(hashBytes),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, ErrUserTaken
		}
		return domain.User{}, err
	}

	return user, nil
}

// Authenticate valida credenciales por username. Usuario inexistente y
// contraseña incorrecta fallan con el mismo error, para no filtrar qué
// usernames existen.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("auth service not configured")
	}

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	if s.limiter != nil && !s.limiter.Allow(username) {
		return domain.User{}, ErrRateLimited
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
