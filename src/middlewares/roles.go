package middlewares

import (
	"net/http"

	"boatsafari/src/types"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group on the caller's role tag, which
// AuthMiddleware has already resolved from the database. The allowed
// set is fixed per route, mirroring the access table in one place
// instead of a mutable role registry.
func RequireRoles(roles ...types.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, ok := types.ParseRole(ctx.GetString("role"))
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		if !role.OneOf(roles...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
	}
}
