package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PalakRajput2/real-estate/internal/domain"
)

// SavedPostRepository define el contrato de persistencia para la relación
// usuario-publicación guardada.
type SavedPostRepository interface {
	Create(ctx context.Context, saved domain.SavedPost) error
	Delete(ctx context.Context, userID, postID string) error
	Exists(ctx context.Context, userID, postID string) (bool, error)
	ListPostsByUser(ctx context.Context, userID string) ([]domain.Post, error)
}

// PgSavedPostRepository implementa SavedPostRepository usando pgxpool.
type PgSavedPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgSavedPostRepository(pool *pgxpool.Pool) *PgSavedPostRepository {
	return &PgSavedPostRepository{pool: pool}
}

func (r *PgSavedPostRepository) Create(ctx context.Context, saved domain.SavedPost) error {
	const query = `
		INSERT INTO saved_posts (id, user_id, post_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		saved.ID,
		saved.UserID,
		saved.PostID,
		saved.CreatedAt,
	)
	return err
}

func (r *PgSavedPostRepository) Delete(ctx context.Context, userID, postID string) error {
	// Borrar dos veces es inofensivo: la segunda no afecta filas.
	const query = `DELETE FROM saved_posts WHERE user_id = $1 AND post_id = $2`
	_, err := r.pool.Exec(ctx, query, userID, postID)
	return err
}

func (r *PgSavedPostRepository) Exists(ctx context.Context, userID, postID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM saved_posts WHERE user_id = $1 AND post_id = $2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, postID).Scan(&exists)
	return exists, err
}

func (r *PgSavedPostRepository) ListPostsByUser(ctx context.Context, userID string) ([]domain.Post, error) {
	const query = `
		SELECT p.id, p.title, p.price, p.images, p.address, p.city, p.bedroom,
		       p.bathroom, p.type, p.property, p.user_id, p.created_at
		FROM saved_posts s
		JOIN posts p ON p.id = s.post_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}
