package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecom-admin-backend/internal/models"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
