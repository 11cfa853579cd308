package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PalakRajput2/real-estate/internal/domain"
	"github.com/PalakRajput2/real-estate/internal/repository"
	"github.com/PalakRajput2/real-estate/internal/service"
)

// PostHandler mantiene dependencias para endpoints de publicaciones.
type PostHandler struct {
	logger   *zap.Logger
	postSvc  *service.PostService
	savedSvc *service.SavedPostService
	tokens   *service.TokenService
}

// NewPostHandler crea una instancia de PostHandler con dependencias necesarias.
func NewPostHandler(
	logger *zap.Logger,
	postSvc *service.PostService,
	savedSvc *service.SavedPostService,
	tokens *service.TokenService,
) *PostHandler {
	return &PostHandler{
		logger:   logger,
		postSvc:  postSvc,
		savedSvc: savedSvc,
		tokens:   tokens,
	}
}

// GetPosts maneja GET /api/posts con filtros opcionales por query string.
func (h *PostHandler) GetPosts(c *gin.Context) {
	filter := repository.PostFilter{
		City:     c.Query("city"),
		Type:     c.Query("type"),
		Property: c.Query("property"),
		Bedroom:  queryInt(c, "bedroom"),
		MinPrice: queryInt(c, "minPrice"),
		MaxPrice: queryInt(c, "maxPrice"),
	}

	posts, err := h.postSvc.Search(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("search posts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost maneja GET /api/posts/:id. Si la request trae un cookie de sesión
// válido se agrega el flag isSaved del usuario; un cookie inválido no es
// error, solo degrada a isSaved=false.
func (h *PostHandler) GetPost(c *gin.Context) {
	id := c.Param("id")

	post, err := h.postSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		h.logger.Error("get post failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get post"})
		return
	}

	isSaved := false
	if token, cookieErr := c.Cookie(TokenCookieName); cookieErr == nil && token != "" {
		if userID, verifyErr := h.tokens.Verify(token); verifyErr == nil {
			saved, savedErr := h.savedSvc.IsSaved(c.Request.Context(), userID, id)
			if savedErr != nil {
				h.logger.Warn("is saved lookup failed", zap.Error(savedErr))
			} else {
				isSaved = saved
			}
		}
	}

	c.JSON(http.StatusOK, struct {
		domain.PostWithDetail
		IsSaved bool `json:"isSaved"`
	}{post, isSaved})
}

// AddPost maneja POST /api/posts.
func (h *PostHandler) AddPost(c *gin.Context) {
	callerID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	var req struct {
		PostData struct {
			Title    string   `json:"title" binding:"required"`
			Price    int      `json:"price"`
			Images   []string `json:"images"`
			Address  string   `json:"address"`
			City     string   `json:"city"`
			Bedroom  int      `json:"bedroom"`
			Bathroom int      `json:"bathroom"`
			Type     string   `json:"type"`
			Property string   `json:"property"`
		} `json:"postData" binding:"required"`
		PostDetail struct {
			Description string `json:"desc"`
			Utilities   string `json:"utilities"`
			Pet         string `json:"pet"`
			Income      string `json:"income"`
			Size        int    `json:"size"`
			School      int    `json:"school"`
			Bus         int    `json:"bus"`
			Restaurant  int    `json:"restaurant"`
		} `json:"postDetail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid add post request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	post, err := h.postSvc.Create(c.Request.Context(), callerID, service.CreatePostInput{
		Post: domain.Post{
			Title:    req.PostData.Title,
			Price:    req.PostData.Price,
			Images:   req.PostData.Images,
			Address:  req.PostData.Address,
			City:     req.PostData.City,
			Bedroom:  req.PostData.Bedroom,
			Bathroom: req.PostData.Bathroom,
			Type:     req.PostData.Type,
			Property: req.PostData.Property,
		},
		Detail: domain.PostDetail{
			Description: req.PostDetail.Description,
			Utilities:   req.PostDetail.Utilities,
			Pet:         req.PostDetail.Pet,
			Income:      req.PostDetail.Income,
			Size:        req.PostDetail.Size,
			School:      req.PostDetail.School,
			Bus:         req.PostDetail.Bus,
			Restaurant:  req.PostDetail.Restaurant,
		},
	})
	if err != nil {
		h.logger.Error("create post failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost maneja PUT /api/posts/:id. Solo el dueño puede modificar.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	callerID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	var req struct {
		Title    *string   `json:"title"`
		Price    *int      `json:"price"`
		Images   *[]string `json:"images"`
		Address  *string   `json:"address"`
		City     *string   `json:"city"`
		Bedroom  *int      `json:"bedroom"`
		Bathroom *int      `json:"bathroom"`
		Type     *string   `json:"type"`
		Property *string   `json:"property"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update post request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	post, err := h.postSvc.Update(c.Request.Context(), c.Param("id"), callerID, service.UpdatePostInput{
		Title:    req.Title,
		Price:    req.Price,
		Images:   req.Images,
		Address:  req.Address,
		City:     req.City,
		Bedroom:  req.Bedroom,
		Bathroom: req.Bathroom,
		Type:     req.Type,
		Property: req.Property,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		case errors.Is(err, service.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to update this post"})
		default:
			h.logger.Error("update post failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update post"})
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost maneja DELETE /api/posts/:id. Solo el dueño puede eliminar.
func (h *PostHandler) DeletePost(c *gin.Context) {
	callerID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	err := h.postSvc.Delete(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		case errors.Is(err, service.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"message": "Not Authorized!"})
		default:
			h.logger.Error("delete post failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete post"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func queryInt(c *gin.Context, key string) int {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
