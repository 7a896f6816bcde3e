package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/users", h.List)
	router.POST("/users", h.Create)
	router.GET("/users/:id", h.Get)
	router.PATCH("/users/:id", h.Update)
	router.PUT("/users/:id/password", h.UpdatePassword)
	router.DELETE("/users/:id", h.Delete)
}
