package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository expone las consultas de conversaciones que necesita el
// conteo de notificaciones.
type ChatRepository interface {
	CountUnseen(ctx context.Context, userID string) (int, error)
}

// PgChatRepository implementa ChatRepository usando pgxpool.
type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

func (r *PgChatRepository) CountUnseen(ctx context.Context, userID string) (int, error) {
	const query = `
		SELECT count(*)
		FROM chats
		WHERE $1 = ANY (user_ids)
		  AND NOT ($1 = ANY (seen_by))
	`
	var count int
	err := r.pool.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}
