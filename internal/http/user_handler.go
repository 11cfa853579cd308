package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PalakRajput2/real-estate/internal/service"
)

// UserHandler mantiene dependencias para endpoints de usuarios.
type UserHandler struct {
	logger        *zap.Logger
	userSvc       *service.UserService
	postSvc       *service.PostService
	savedSvc      *service.SavedPostService
	notifications *service.NotificationService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(
	logger *zap.Logger,
	userSvc *service.UserService,
	postSvc *service.PostService,
	savedSvc *service.SavedPostService,
	notifications *service.NotificationService,
) *UserHandler {
	return &UserHandler{
		logger:        logger,
		userSvc:       userSvc,
		postSvc:       postSvc,
		savedSvc:      savedSvc,
		notifications: notifications,
	}
}

// GetUsers maneja GET /api/users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get users!"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser maneja PUT /api/users/:id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	callerID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Avatar   string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), callerID, service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized!"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
		case errors.Is(err, service.ErrUserTaken):
			c.JSON(http.StatusConflict, gin.H{"message": "Username or email already taken!"})
		default:
			h.logger.Error("update user failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user!"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser maneja DELETE /api/users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	callerID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	err := h.userSvc.Delete(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized!"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
		default:
			h.logger.Error("delete user failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user!"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully!"})
}

// SavePost maneja POST /api/users/save. Alterna la relación de guardado.
func (h *UserHandler) SavePost(c *gin.Context) {
	callerID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	var req struct {
		PostID string `json:"postId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID and User ID are required."})
		return
	}

	result, err := h.savedSvc.Toggle(c.Request.Context(), callerID, req.PostID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Post ID and User ID are required."})
			return
		}
		h.logger.Error("toggle saved post failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save/remove post."})
		return
	}

	if result == service.ToggleRemoved {
		c.JSON(http.StatusOK, gin.H{"message": "Post removed from saved list."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post saved successfully."})
}

// ProfilePosts maneja GET /api/users/profilePosts: publicaciones propias más
// las guardadas.
func (h *UserHandler) ProfilePosts(c *gin.Context) {
	callerID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	userPosts, err := h.postSvc.ListByOwner(c.Request.Context(), callerID)
	if err != nil {
		h.logger.Error("list own posts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get profile posts!"})
		return
	}

	savedPosts, err := h.savedSvc.ListSaved(c.Request.Context(), callerID)
	if err != nil {
		h.logger.Error("list saved posts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get profile posts!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userPosts":  userPosts,
		"savedPosts": savedPosts,
	})
}

// GetNotificationNumber maneja GET /api/users/notification. Devuelve el
// entero pelado, igual que el servicio original.
func (h *UserHandler) GetNotificationNumber(c *gin.Context) {
	callerID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	count, err := h.notifications.CountUnseen(c.Request.Context(), callerID)
	if err != nil {
		h.logger.Error("count unseen chats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get notifications!"})
		return
	}

	c.JSON(http.StatusOK, count)
}
