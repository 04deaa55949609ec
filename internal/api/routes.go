package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API routes.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	api := router.Group("/api")

	// --- Marketing Flows ---
	flows := api.Group("/flows")
	{
		flows.POST("/blog-article", h.GenerateArticle)
		flows.POST("/seo-optimize", h.OptimizeSEO)
		flows.POST("/video-script", h.GenerateVideoScript)
		flows.POST("/business-names", h.GenerateBusinessNames)
		flows.POST("/persona", h.GeneratePersona)
		flows.POST("/product-description", h.GenerateProductDescription)
		flows.POST("/image", h.GenerateImage)
	}

	// --- Site Content ---
	api.GET("/tools", h.ListTools)
	api.GET("/site", h.GetLanding)

	// --- Simple Health Check ---
	router.GET("/health", h.Health)
	router.HEAD("/health", h.Health)
}
