package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PalakRajput2/real-estate/internal/domain"
)

// PostFilter acota la búsqueda de publicaciones. Cero valor = sin filtro.
type PostFilter struct {
	City     string
	Type     string
	Property string
	Bedroom  int
	MinPrice int
	MaxPrice int
}

// PostRepository define el contrato de persistencia para publicaciones.
type PostRepository interface {
	Create(ctx context.Context, post domain.Post, detail domain.PostDetail) error
	GetByID(ctx context.Context, id string) (domain.PostWithDetail, error)
	Search(ctx context.Context, filter PostFilter) ([]domain.Post, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Post, error)
	Update(ctx context.Context, post domain.Post) error
	Delete(ctx context.Context, id string) error
}

// PgPostRepository implementa PostRepository usando pgxpool.
type PgPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

const postColumns = `id, title, price, images, address, city, bedroom, bathroom, type, property, user_id, created_at`

func (r *PgPostRepository) Create(ctx context.Context, post domain.Post, detail domain.PostDetail) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insertPost = `
		INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = tx.Exec(ctx, insertPost,
		post.ID,
		post.Title,
		post.Price,
		post.Images,
		post.Address,
		post.City,
		post.Bedroom,
		post.Bathroom,
		post.Type,
		post.Property,
		post.UserID,
		post.CreatedAt,
	)
	if err != nil {
		return err
	}

	const insertDetail = `
		INSERT INTO post_details (post_id, description, utilities, pet, income, size, school, bus, restaurant)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.Exec(ctx, insertDetail,
		post.ID,
		detail.Description,
		detail.Utilities,
		detail.Pet,
		detail.Income,
		detail.Size,
		detail.School,
		detail.Bus,
		detail.Restaurant,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PgPostRepository) GetByID(ctx context.Context, id string) (domain.PostWithDetail, error) {
	const query = `
		SELECT p.id, p.title, p.price, p.images, p.address, p.city, p.bedroom,
		       p.bathroom, p.type, p.property, p.user_id, p.created_at,
		       u.username, u.avatar
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`
	var (
		result domain.PostWithDetail
		owner  domain.PostOwner
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Title,
		&result.Price,
		&result.Images,
		&result.Address,
		&result.City,
		&result.Bedroom,
		&result.Bathroom,
		&result.Type,
		&result.Property,
		&result.UserID,
		&result.CreatedAt,
		&owner.Username,
		&owner.Avatar,
	)
	if err != nil {
		return domain.PostWithDetail{}, err
	}
	result.Owner = &owner

	const detailQuery = `
		SELECT post_id, description, utilities, pet, income, size, school, bus, restaurant
		FROM post_details
		WHERE post_id = $1
	`
	var d domain.PostDetail
	err = r.pool.QueryRow(ctx, detailQuery, id).Scan(
		&d.PostID,
		&d.Description,
		&d.Utilities,
		&d.Pet,
		&d.Income,
		&d.Size,
		&d.School,
		&d.Bus,
		&d.Restaurant,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return domain.PostWithDetail{}, err
	}
	if err == nil {
		result.Detail = &d
	}
	return result, nil
}

func (r *PgPostRepository) Search(ctx context.Context, filter PostFilter) ([]domain.Post, error) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.City != "" {
		addCondition("city = $%d", filter.City)
	}
	if filter.Type != "" {
		addCondition("type = $%d", filter.Type)
	}
	if filter.Property != "" {
		addCondition("property = $%d", filter.Property)
	}
	if filter.Bedroom > 0 {
		addCondition("bedroom = $%d", filter.Bedroom)
	}
	if filter.MinPrice > 0 {
		addCondition("price >= $%d", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		addCondition("price <= $%d", filter.MaxPrice)
	}

	query := `SELECT ` + postColumns + ` FROM posts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PgPostRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Post, error) {
	const query = `
		SELECT ` + postColumns + `
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PgPostRepository) Update(ctx context.Context, post domain.Post) error {
	const query = `
		UPDATE posts
		SET title = $2, price = $3, images = $4, address = $5, city = $6,
		    bedroom = $7, bathroom = $8, type = $9, property = $10
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Price,
		post.Images,
		post.Address,
		post.City,
		post.Bedroom,
		post.Bathroom,
		post.Type,
		post.Property,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgPostRepository) Delete(ctx context.Context, id string) error {
	// post_details y saved_posts caen por cascada.
	const query = `DELETE FROM posts WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Price,
			&p.Images,
			&p.Address,
			&p.City,
			&p.Bedroom,
			&p.Bathroom,
			&p.Type,
			&p.Property,
			&p.UserID,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
