package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/services"
	"github.com/YokoReis/focus-flash-forge-23/store"
	"github.com/gin-gonic/gin"
)

// AdminCookieName holds the admin JWT issued at login.
const AdminCookieName = "admin_token"

// AdminClaimsKey is where the verified token claims are left in the gin context.
const AdminClaimsKey = "adminClaims"

// AdminAuthMiddleware validates the admin JWT and checks that the store still
// holds an active admin session. Logging out invalidates every issued token.
func AdminAuthMiddleware(jwtService *services.JWTService, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from cookie first, then Authorization header
		token, err := c.Cookie(AdminCookieName)
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := jwtService.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		if !st.IsAdmin() {
			log.Printf("[auth] token presented without an active admin session")
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin session ended"))
			c.Abort()
			return
		}

		c.Set(AdminClaimsKey, claims)
		c.Next()
	}
}
