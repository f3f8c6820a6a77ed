package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	APIVersion = "1.0.0"

	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

type SystemController struct {
	StartedAt time.Time
	now       func() time.Time
}

func NewSystemController(startedAt time.Time) *SystemController {
	return &SystemController{StartedAt: startedAt, now: time.Now}
}

// Health reports liveness and process uptime in seconds. It does not touch
// the database.
func (sc *SystemController) Health(c *gin.Context) {
	now := sc.now()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Restaurant Backend API is running",
		"timestamp": now.UTC().Format(isoMillis),
		"uptime":    now.Sub(sc.StartedAt).Seconds(),
	})
}

// Index lists the available endpoints.
func (sc *SystemController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to Restaurant Management API",
		"version": APIVersion,
		"endpoints": gin.H{
			"health": "GET /health",
			"menu": gin.H{
				"getAll":  "GET /api/menu",
				"getById": "GET /api/menu/:id",
				"create":  "POST /api/menu",
			},
			"reservations": gin.H{
				"getAll": "GET /api/reservations",
				"create": "POST /api/reservations",
			},
		},
	})
}
