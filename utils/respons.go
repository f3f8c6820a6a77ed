package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
}

func RespondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, SuccessResponse{
		Success: true,
		Data:    data,
	})
}

func RespondList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondError writes a failure envelope. The message is left out when err
// is nil.
func RespondError(c *gin.Context, code int, errCode string, err error) {
	resp := ErrorResponse{
		Success: false,
		Error:   errCode,
	}
	if err != nil {
		resp.Message = err.Error()
	}
	c.JSON(code, resp)
}

func RespondNotRouted(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Error:   "Endpoint not found",
		Path:    c.Request.URL.Path,
	})
}
