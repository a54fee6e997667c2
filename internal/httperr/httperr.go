package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Business writes a business error using its registered message.
func Business(c *gin.Context, code string) {
	Write(c, StatusFor(code), code, Message(code))
}

// FromError writes be with its formatted message.
func FromError(c *gin.Context, be BusinessError) {
	Write(c, StatusFor(be.Code), be.Code, be.Message())
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func BadGateway(c *gin.Context, code, message string) {
	Write(c, http.StatusBadGateway, code, message)
}
