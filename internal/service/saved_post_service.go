package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PalakRajput2/real-estate/internal/domain"
	"github.com/PalakRajput2/real-estate/internal/repository"
)

// SavedPostService administra la relación usuario-publicación guardada con
// semántica de toggle idempotente.
type SavedPostService struct {
	logger *zap.Logger
	saved  repository.SavedPostRepository
}

// ToggleResult indica en qué estado quedó la relación después del toggle.
type ToggleResult string

const (
	ToggleSaved   ToggleResult = "saved"
	ToggleRemoved ToggleResult = "removed"
)

func NewSavedPostService(logger *zap.Logger, saved repository.SavedPostRepository) *SavedPostService {
	return &SavedPostService{
		logger: logger,
		saved:  saved,
	}
}

// Toggle invierte la membresía del par (userID, postID): si existe la borra,
// si no existe la crea. El par tiene restricción UNIQUE en el store, así que
// dos toggles concurrentes no pueden crear dos filas: el segundo create
// recibe la violación de unicidad y se interpreta como "ya estaba guardado".
// El doble delete es inofensivo por sí mismo.
func (s *SavedPostService) Toggle(ctx context.Context, userID, postID string) (ToggleResult, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(postID) == "" {
		return "", ErrInvalidInput
	}

	exists, err := s.saved.Exists(ctx, userID, postID)
	if err != nil {
		return "", err
	}

	if exists {
		if err := s.saved.Delete(ctx, userID, postID); err != nil {
			return "", err
		}
		return ToggleRemoved, nil
	}

	saved := domain.SavedPost{
		ID:        uuid.NewString(),
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.saved.Create(ctx, saved); err != nil {
		if isUniqueViolation(err) {
			// Otro toggle ganó la carrera; la publicación ya quedó guardada.
			return ToggleSaved, nil
		}
		return "", err
	}
	return ToggleSaved, nil
}

// IsSaved indica si el usuario tiene guardada la publicación.
func (s *SavedPostService) IsSaved(ctx context.Context, userID, postID string) (bool, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(postID) == "" {
		return false, nil
	}
	return s.saved.Exists(ctx, userID, postID)
}

// ListSaved devuelve las publicaciones guardadas por el usuario.
func (s *SavedPostService) ListSaved(ctx context.Context, userID string) ([]domain.Post, error) {
	if s.saved == nil {
		return nil, errors.New("saved post service not configured")
	}
	return s.saved.ListPostsByUser(ctx, userID)
}
