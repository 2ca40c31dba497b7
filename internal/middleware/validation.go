package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/app/models/dto"
)

// HandleBindingError answers 400 for a body that failed to decode or validate.
func HandleBindingError(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, dto.HandleValidationError(err))
}

// BindJSON decodes and validates the request body into obj, answering 400
// on failure. It reports whether the handler should continue.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleBindingError(c, err)
		return false
	}
	return true
}
