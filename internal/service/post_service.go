package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/PalakRajput2/real-estate/internal/domain"
	"github.com/PalakRajput2/real-estate/internal/repository"
)

// PostService coordina reglas de negocio para publicaciones.
type PostService struct {
	logger *zap.Logger
	posts  repository.PostRepository
}

var ErrPostNotFound = errors.New("post not found")

func NewPostService(logger *zap.Logger, posts repository.PostRepository) *PostService {
	return &PostService{
		logger: logger,
		posts:  posts,
	}
}

// Search devuelve publicaciones que cumplen el filtro.
func (s *PostService) Search(ctx context.Context, filter repository.PostFilter) ([]domain.Post, error) {
	return s.posts.Search(ctx, filter)
}

// Get devuelve una publicación con su ficha y su dueño.
func (s *PostService) Get(ctx context.Context, id string) (domain.PostWithDetail, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PostWithDetail{}, ErrPostNotFound
		}
		return domain.PostWithDetail{}, err
	}
	return post, nil
}

// ListByOwner devuelve las publicaciones creadas por un usuario.
func (s *PostService) ListByOwner(ctx context.Context, userID string) ([]domain.Post, error) {
	return s.posts.ListByOwner(ctx, userID)
}

type CreatePostInput struct {
	Post   domain.Post
	Detail domain.PostDetail
}

// Create persiste una publicación nueva con su ficha. El dueño siempre es
// el usuario autenticado, nunca un campo del body.
func (s *PostService) Create(ctx context.Context, ownerID string, input CreatePostInput) (domain.Post, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.Post{}, ErrInvalidInput
	}

	post := input.Post
	post.ID = uuid.NewString()
	post.UserID = ownerID
	post.CreatedAt = time.Now().UTC()
	if post.Images == nil {
		post.Images = []string{}
	}

	detail := input.Detail
	detail.PostID = post.ID

	if err := s.posts.Create(ctx, post, detail); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// UpdatePostInput lleva cambios parciales; nil = sin cambio.
type UpdatePostInput struct {
	Title    *string
	Price    *int
	Images   *[]string
	Address  *string
	City     *string
	Bedroom  *int
	Bathroom *int
	Type     *string
	Property *string
}

// Update modifica una publicación tras verificar que el que llama es el
// dueño. La verificación va estrictamente antes de escribir: leer,
// chequear, escribir.
func (s *PostService) Update(ctx context.Context, id, callerID string, input UpdatePostInput) (domain.Post, error) {
	post, err := s.getOwned(ctx, id, callerID)
	if err != nil {
		return domain.Post{}, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Price != nil {
		post.Price = *input.Price
	}
	if input.Images != nil {
		post.Images = *input.Images
	}
	if input.Address != nil {
		post.Address = *input.Address
	}
	if input.City != nil {
		post.City = *input.City
	}
	if input.Bedroom != nil {
		post.Bedroom = *input.Bedroom
	}
	if input.Bathroom != nil {
		post.Bathroom = *input.Bathroom
	}
	if input.Type != nil {
		post.Type = *input.Type
	}
	if input.Property != nil {
		post.Property = *input.Property
	}

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Post{}, ErrPostNotFound
		}
		return domain.Post{}, err
	}
	return post, nil
}

// Delete elimina una publicación tras verificar al dueño.
func (s *PostService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.getOwned(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

func (s *PostService) getOwned(ctx context.Context, id, callerID string) (domain.Post, error) {
	found, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Post{}, ErrPostNotFound
		}
		return domain.Post{}, err
	}
	if found.UserID != callerID {
		return domain.Post{}, ErrNotAuthorized
	}
	return found.Post, nil
}
