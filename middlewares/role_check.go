package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/yummy-app/utils"
)

// RequireRole lets through users whose role is one of roles. Admin is always
// allowed.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]bool{"admin": true}
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		role, _ := userRole.(string)
		if !allowed[role] {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("role %q is not allowed", role))
			c.Abort()
			return
		}

		c.Next()
	}
}
