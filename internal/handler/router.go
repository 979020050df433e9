package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the registry's route table onto a fresh gin engine.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	serverRoutes := router.Group("/server")
	{
		serverRoutes.GET("", h.GetAllServers)
		serverRoutes.GET("/all", h.GetAllServers)
		serverRoutes.POST("/search", h.SearchServers)
		serverRoutes.POST("/add", h.AddServer)
		serverRoutes.POST("/update/:id", h.UpdateServer)
		serverRoutes.POST("/delete/:id", h.DeleteServer)
	}

	regionRoutes := router.Group("/region")
	{
		regionRoutes.GET("", h.GetAllRegions)
		regionRoutes.GET("/all", h.GetAllRegions)
		regionRoutes.POST("/add", h.AddRegion)
	}

	return router
}
