package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все REST API маршруты
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// ============ Клиенты (Clients) ============
	clients := api.Group("/clients")
	{
		clients.GET("", h.GetClients)          // GET список с поиском
		clients.POST("", h.SaveClient)         // POST создание/изменение
		clients.DELETE("/:id", h.DeleteClient) // DELETE удаление с каскадом
	}

	// ============ Товары (Products) ============
	products := api.Group("/products")
	{
		products.GET("", h.GetProducts)
		products.POST("", h.SaveProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	// ============ Заказы МКЛ ============
	mkl := api.Group("/orders/mkl")
	{
		mkl.GET("", h.GetMklOrders)
		mkl.POST("", h.SaveMklOrder)
		mkl.DELETE("/:id", h.DeleteMklOrder)
		mkl.PUT("/:id/status", h.SetMklStatus)
		mkl.GET("/:id/items", h.GetMklItems)
		mkl.PUT("/:id/items", h.ReplaceMklItems)
	}

	// ============ Заказы Меридиан ============
	meridian := api.Group("/orders/meridian")
	{
		meridian.GET("", h.GetMeridianOrders)
		meridian.POST("", h.SaveMeridianOrder)
		meridian.DELETE("/:id", h.DeleteMeridianOrder)
		meridian.PUT("/:id/status", h.SetMeridianStatus)
		meridian.GET("/:id/items", h.GetMeridianItems)
		meridian.PUT("/:id/items", h.ReplaceMeridianItems)
	}

	// ============ Экспорт ============
	api.POST("/export/mkl", h.ExportMkl)
	api.POST("/export/meridian", h.ExportMeridian)
}
