package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PalakRajput2/real-estate/internal/service"
)

// TokenCookieName es el cookie HTTP-only que transporta el token de sesión.
const TokenCookieName = "token"

const authUserIDKey = "auth_user_id"

// AuthRequired valida el token de sesión del cookie y guarda el userID en el
// contexto. Sin cookie responde 401; con token inválido o vencido, 403.
func AuthRequired(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "token service not configured"})
			c.Abort()
			return
		}

		token, err := c.Cookie(TokenCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Token is not valid"})
			c.Abort()
			return
		}

		c.Set(authUserIDKey, userID)
		c.Next()
	}
}

// GetAuthUserID obtiene el userID autenticado desde el contexto.
func GetAuthUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get(authUserIDKey)
	if !ok {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok && userID != ""
}
