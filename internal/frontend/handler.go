package frontend

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewLandingHandler serves the embedded landing page. The page is fully
// static; live data comes from the /api/events polling endpoint.
func NewLandingHandler(staticFS fs.FS) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to render page"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	}
}
