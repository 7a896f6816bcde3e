package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/utils"
)

// AdminAuthMiddleware validates the bearer token and requires the
// ADMIN role.
func AdminAuthMiddleware(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Invalid or expired token"))
			c.Abort()
			return
		}

		role, ok := claims["role"].(string)
		if !ok || models.UserRole(role) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Forbidden: Admins only"))
			c.Abort()
			return
		}

		// The handler only needs the user object when it exists; the
		// role claim above already gates access.
		if userIDFloat, ok := claims["user_id"].(float64); ok {
			if user, err := users.GetByID(c.Request.Context(), uint(userIDFloat)); err == nil {
				c.Set("user", *user)
			}
		}

		c.Next()
	}
}
