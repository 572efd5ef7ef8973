// Package response holds the three response shapes every handler and
// middleware uses. Keeping them in one place is what lets the validation
// chains short-circuit without duplicating error bodies per route.
package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AccessForbidden aborts with the fixed 403 body. Missing, malformed and
// expired tokens all land here; the client is told nothing more.
func AccessForbidden(c *gin.Context, at string) {
	log.Println("Access forbidden:", at)
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"message": "Access Forbidden",
	})
}

// InvalidData aborts with 400 and a message naming the violated constraint.
func InvalidData(c *gin.Context, at, message string) {
	log.Println("Invalid data provided at:", at)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"message": message,
	})
}

// InternalServerError aborts with 500 and surfaces the underlying error in
// the body. A diagnostic convenience carried over from the first revision
// of this API, not a hardened practice.
func InternalServerError(c *gin.Context, at string, err error) {
	log.Println("Internal server error at:", at)
	log.Println(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":   err.Error(),
		"message": "Internal server error",
	})
}
