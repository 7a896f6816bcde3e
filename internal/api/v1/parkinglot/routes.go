package parkinglot

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/parking-lots", h.List)
	router.POST("/parking-lots", h.Create)
	router.GET("/parking-lots/:id", h.Get)
	router.PUT("/parking-lots/:id", h.Update)
	router.DELETE("/parking-lots/:id", h.Delete)
	router.PATCH("/parking-lots/:id/status", h.UpdateStatus)
	router.PATCH("/parking-lots/:id/spaces", h.UpdateSpaces)
}
