package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notesfe/notes-api/internal/dto"
)

// HealthCheck reports process liveness
// @Summary Liveness probe
// @Description Fixed success payload; no dependency on the provider
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/check [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "OK"})
}
