package jsonapi

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/terms-api/pkg/errors"
)

// JSON sends a JSON:API document.
func JSON(c *gin.Context, status int, doc *Document) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, doc)
}

// Error converts err into a JSON:API error document and sends it with the
// error's HTTP status.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, &ErrorDocument{
		Errors: []ErrorObject{{
			Status: strconv.Itoa(appErr.Status),
			Code:   appErr.Code,
			Detail: appErr.Message,
		}},
	})
}
