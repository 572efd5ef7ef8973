package middlewares

import (
	"strings"

	"gingallery/config"
	"gingallery/response"
	"gingallery/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserID is where the verifier stores the authenticated user id.
const ContextUserID = "userId"

// JWT gates protected routes. The token is taken from the Authorization
// header first (API clients), then from the "token" cookie (browsers).
// A missing token and a failed verification are deliberately
// indistinguishable: both produce the fixed 403 body.
func JWT(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			// Expecting format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			tokenCookie, err := c.Request.Cookie("token")
			if err != nil {
				response.AccessForbidden(c, "middlewares.JWT")
				return
			}
			tokenString = tokenCookie.Value
		}

		claims, err := utils.ParseToken(tokenString, cfg.JWTSecret)
		if err != nil {
			response.AccessForbidden(c, "middlewares.JWT")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
