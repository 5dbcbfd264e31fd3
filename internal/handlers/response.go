package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contactbook-backend/internal/apierr"
)

// The wire envelope is {"data": ...} on success and {"errors": ...} on
// failure. Validation failures put the field-issue list under "errors";
// everything else carries a plain message string.

func RespondData(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

func RespondError(c *gin.Context, err error) {
	if ae := apierr.From(err); ae != nil {
		if len(ae.Issues) > 0 {
			c.JSON(ae.Status, gin.H{"errors": ae.Issues})
			return
		}
		c.JSON(ae.Status, gin.H{"errors": ae.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"errors": err.Error()})
}
