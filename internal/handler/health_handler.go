package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthcheck godoc
// @Summary      Health check
// @Description  Reports that the service is up.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string "{"everything": "is ok"}"
// @Router       /healthcheck [get]
func Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"everything": "is ok"})
}
