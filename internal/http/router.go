package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PalakRajput2/real-estate/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	tokens *service.TokenService,
	authH *AuthHandler,
	userH *UserHandler,
	postH *PostHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y CORS.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(corsOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	auth := r.Group("/api/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/logout", authH.Logout)

	users := r.Group("/api/users")
	users.GET("", userH.GetUsers)
	users.PUT("/:id", AuthRequired(tokens), userH.UpdateUser)
	users.DELETE("/:id", AuthRequired(tokens), userH.DeleteUser)
	users.POST("/save", AuthRequired(tokens), userH.SavePost)
	users.GET("/profilePosts", AuthRequired(tokens), userH.ProfilePosts)
	users.GET("/notification", AuthRequired(tokens), userH.GetNotificationNumber)

	posts := r.Group("/api/posts")
	posts.GET("", postH.GetPosts)
	posts.GET("/:id", postH.GetPost)
	posts.POST("", AuthRequired(tokens), postH.AddPost)
	posts.PUT("/:id", AuthRequired(tokens), postH.UpdatePost)
	posts.DELETE("/:id", AuthRequired(tokens), postH.DeletePost)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// corsMiddleware permite requests cross-origin con credenciales desde los
// orígenes de la lista.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Headers", "Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
