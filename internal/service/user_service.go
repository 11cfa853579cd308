package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/PalakRajput2/real-estate/internal/domain"
	"github.com/PalakRajput2/real-estate/internal/repository"
)

// UserService coordina reglas de negocio para perfiles de usuario.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNotAuthorized = errors.New("not authorized")
)

func NewUserService(logger *zap.Logger, users repository.UserRepository) *UserService {
	return &UserService{
		logger: logger,
		users:  users,
	}
}

// List devuelve todos los usuarios registrados.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UpdateUserInput lleva los campos opcionales de una actualización de perfil.
// Campo vacío = sin cambio.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Avatar   string
}

// Update aplica cambios parciales a un perfil. Solo el propio usuario puede
// modificarlo; una contraseña nueva se vuelve a hashear.
func (s *UserService) Update(ctx context.Context, id, callerID string, input UpdateUserInput) (domain.User, error) {
	if id != callerID {
		return domain.User{}, ErrNotAuthorized
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	if username := strings.TrimSpace(input.Username); username != "" {
		user.Username = username
	}
	if email := strings.ToLower(strings.TrimSpace(input.Email)); email != "" {
		user.Email = email
	}
	if avatar := strings.TrimSpace(input.Avatar); avatar != "" {
		user.Avatar = avatar
	}
	if password := strings.TrimSpace(input.Password); password != "" {
		hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return domain.User{}, err
		}
		user.Password = string(hashBytes)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, ErrUserTaken
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// Delete elimina la cuenta del propio usuario. Las publicaciones y la
// relación de guardados caen por cascada en el store.
func (s *UserService) Delete(ctx context.Context, id, callerID string) error {
	if id != callerID {
		return ErrNotAuthorized
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
