package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-api/utils"
)

// Recovery turns a panic anywhere below it into the standard 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		err := fmt.Errorf("%v", recovered)
		utils.ErrorLogger.Errorf("Error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error", err)
		c.Abort()
	})
}
