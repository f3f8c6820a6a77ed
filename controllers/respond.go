package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-api/utils"
)

const errInvalidBody = "Invalid request body"

func respondValidation(c *gin.Context, verr *ValidationError) {
	utils.RespondError(c, http.StatusBadRequest, verr.Reason, verr)
}
