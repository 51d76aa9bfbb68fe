package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctrl *HealthController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", ctrl.healthCheck)
	router.HEAD("/health", ctrl.healthCheck)
}

func (ctrl *HealthController) healthCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}
