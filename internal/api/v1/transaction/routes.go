package transaction

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/transactions", h.List)
	router.POST("/transactions", h.Create)
	router.GET("/transactions/ongoing", h.Ongoing)
	router.GET("/transactions/:id", h.Get)
	router.PUT("/transactions/:id", h.Update)
	router.DELETE("/transactions/:id", h.Delete)
	router.POST("/transactions/:id/complete", h.Complete)
	router.POST("/transactions/:id/cancel", h.Cancel)
	router.GET("/revenue", h.Revenue)
}
