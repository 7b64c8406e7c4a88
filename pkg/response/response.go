package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success sends 200 with {"status":"success"}.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, Ack{Status: StatusSuccess})
}

// Ignored sends 200 with {"status":"ignored"}. Unrecognized event types are
// acknowledged, not treated as errors, so the sender does not redeliver.
func Ignored(c *gin.Context) {
	c.JSON(http.StatusOK, Ack{Status: StatusIgnored})
}

// BadRequest sends 400 with an error acknowledgment.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Ack{Status: StatusError, Message: message})
}

// InternalError sends 500 with an error acknowledgment carrying the error
// text.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Ack{Status: StatusError, Message: err.Error()})
}

// List sends 200 with a raw JSON array of display strings.
func List(c *gin.Context, items []string) {
	if items == nil {
		items = []string{}
	}
	c.JSON(http.StatusOK, items)
}

// ListInternalError sends 500 with {"error":<message>} for read endpoints.
func ListInternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ListError{Error: err.Error()})
}
