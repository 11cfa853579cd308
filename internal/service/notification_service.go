package service

import (
	"context"

	"github.com/PalakRajput2/real-estate/internal/repository"
)

// NotificationService calcula conteos de conversaciones sin leer.
type NotificationService struct {
	chats repository.ChatRepository
}

func NewNotificationService(chats repository.ChatRepository) *NotificationService {
	return &NotificationService{chats: chats}
}

// CountUnseen cuenta las conversaciones donde el usuario participa pero no
// figura como visto. Lectura pura; siempre >= 0.
func (s *NotificationService) CountUnseen(ctx context.Context, userID string) (int, error) {
	count, err := s.chats.CountUnseen(ctx, userID)
	if err != nil {
		return 0, err
	}
	if count < 0 {
		count = 0
	}
	return count, nil
}
