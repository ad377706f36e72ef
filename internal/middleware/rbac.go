package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/wordup-api/internal/models"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
	"github.com/noah-isme/wordup-api/pkg/response"
)

// RequireRoles lets the request through only when the authenticated role is listed.
// It must run after JWT.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		value, exists := c.Get(ContextUserKey)
		if !exists {
			response.Abort(c, appErrors.ErrUnauthorized)
			return
		}
		claims, ok := value.(*models.JWTClaims)
		if !ok || claims == nil {
			response.Abort(c, appErrors.ErrUnauthorized)
			return
		}

		if _, ok := allowed[claims.Role]; !ok {
			response.Abort(c, appErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
