package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-api/utils"
)

// LoggerMiddleware writes one line per request. The logger's formatter adds
// the timestamp.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		utils.InfoLogger.WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Infof("%s %s", c.Request.Method, path)
	}
}
