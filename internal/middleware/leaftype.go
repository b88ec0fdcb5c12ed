package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boughtleaf/internal/domain"
)

const (
	leafTypeHeader = "leaf-type"
	leafTypeKey    = "leaf_type"
)

// LeafType resolves the leaf type from the request header, defaulting
// to Normal, and rejects anything outside {Normal, Super}.
func LeafType() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(leafTypeHeader)
		if raw == "" {
			raw = string(domain.LeafTypeNormal)
		}

		leafType, ok := domain.ParseLeafType(raw)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_LEAF_TYPE",
					"message": "invalid leaf type; must be \"Normal\" or \"Super\"",
				},
			})
			return
		}

		c.Set(leafTypeKey, leafType)
		c.Next()
	}
}

// GetLeafType returns the leaf type resolved by the LeafType
// middleware, or Normal when the middleware did not run.
func GetLeafType(c *gin.Context) domain.LeafType {
	if v, ok := c.Get(leafTypeKey); ok {
		if leafType, ok := v.(domain.LeafType); ok {
			return leafType
		}
	}
	return domain.LeafTypeNormal
}
