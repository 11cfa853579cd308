package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/PalakRajput2/real-estate/internal/domain"
	"github.com/PalakRajput2/real-estate/internal/repository"
	"github.com/PalakRajput2/real-estate/internal/service"
)

type mockUserRepo struct {
	usersByID       map[string]domain.User
	usersByUsername map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:       make(map[string]domain.User),
		usersByUsername: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	if _, taken := m.usersByUsername[user.Username]; taken {
		return &pgconn.PgError{Code: "23505"}
	}
	m.usersByID[user.ID] = user
	m.usersByUsername[user.Username] = user.ID
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	id, ok := m.usersByUsername[username]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := []domain.User{}
	for _, u := range m.usersByID {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserRepo) Update(_ context.Context, user domain.User) error {
	if _, ok := m.usersByID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.usersByID[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(m.usersByUsername, user.Username)
	delete(m.usersByID, id)
	return nil
}

type mockPostRepo struct {
	posts map[string]domain.Post
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]domain.Post)}
}

func (m *mockPostRepo) Create(_ context.Context, post domain.Post, _ domain.PostDetail) error {
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id string) (domain.PostWithDetail, error) {
	post, ok := m.posts[id]
	if !ok {
		return domain.PostWithDetail{}, pgx.ErrNoRows
	}
	return domain.PostWithDetail{Post: post}, nil
}

func (m *mockPostRepo) Search(_ context.Context, _ repository.PostFilter) ([]domain.Post, error) {
	posts := []domain.Post{}
	for _, p := range m.posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (m *mockPostRepo) ListByOwner(_ context.Context, userID string) ([]domain.Post, error) {
	posts := []domain.Post{}
	for _, p := range m.posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (m *mockPostRepo) Update(_ context.Context, post domain.Post) error {
	if _, ok := m.posts[post.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.posts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.posts, id)
	return nil
}

type mockSavedPostRepo struct {
	pairs map[string]domain.SavedPost
}

func newMockSavedPostRepo() *mockSavedPostRepo {
	return &mockSavedPostRepo{pairs: make(map[string]domain.SavedPost)}
}

func (m *mockSavedPostRepo) Create(_ context.Context, saved domain.SavedPost) error {
	key := saved.UserID + "|" + saved.PostID
	if _, ok := m.pairs[key]; ok {
		return &pgconn.PgError{Code: "23505"}
	}
	m.pairs[key] = saved
	return nil
}

func (m *mockSavedPostRepo) Delete(_ context.Context, userID, postID string) error {
	delete(m.pairs, userID+"|"+postID)
	return nil
}

func (m *mockSavedPostRepo) Exists(_ context.Context, userID, postID string) (bool, error) {
	_, ok := m.pairs[userID+"|"+postID]
	return ok, nil
}

func (m *mockSavedPostRepo) ListPostsByUser(_ context.Context, userID string) ([]domain.Post, error) {
	posts := []domain.Post{}
	for _, saved := range m.pairs {
		if saved.UserID == userID {
			posts = append(posts, domain.Post{ID: saved.PostID})
		}
	}
	return posts, nil
}

type mockChatRepo struct {
	unseenByUser map[string]int
}

func (m *mockChatRepo) CountUnseen(_ context.Context, userID string) (int, error) {
	return m.unseenByUser[userID], nil
}

type testEnv struct {
	router    *gin.Engine
	tokens    *service.TokenService
	userRepo  *mockUserRepo
	postRepo  *mockPostRepo
	savedRepo *mockSavedPostRepo
	chatRepo  *mockChatRepo
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	userRepo := newMockUserRepo()
	postRepo := newMockPostRepo()
	savedRepo := newMockSavedPostRepo()
	chatRepo := &mockChatRepo{unseenByUser: make(map[string]int)}

	tokens := service.NewTokenService("test-secret", 0)
	authSvc := service.NewAuthService(logger, userRepo, nil)
	userSvc := service.NewUserService(logger, userRepo)
	postSvc := service.NewPostService(logger, postRepo)
	savedSvc := service.NewSavedPostService(logger, savedRepo)
	notificationSvc := service.NewNotificationService(chatRepo)

	authH := NewAuthHandler(logger, authSvc, tokens)
	userH := NewUserHandler(logger, userSvc, postSvc, savedSvc, notificationSvc)
	postH := NewPostHandler(logger, postSvc, savedSvc, tokens)

	return &testEnv{
		router:    NewRouter(logger, tokens, authH, userH, postH, nil),
		tokens:    tokens,
		userRepo:  userRepo,
		postRepo:  postRepo,
		savedRepo: savedRepo,
		chatRepo:  chatRepo,
	}
}
