package handler

import (
	"net/http"

	"ussurochki/internal/app/ds"
	"ussurochki/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЗАКАЗЫ МЕРИДИАН ============

// GetMeridianOrders получает список заказов Меридиан
// @Summary Получение списка заказов Меридиан
// @Description Возвращает анонимные заказы, свежие сверху, с фильтром по статусу
// @Tags MeridianOrders
// @Produce json
// @Param status query string false "Точный фильтр по статусу"
// @Success 200 {object} dto.MeridianOrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders/meridian [get]
func (h *Handler) GetMeridianOrders(c *gin.Context) {
	orders, err := h.Repository.ListMeridianOrders(c.Query("status"))
	if err != nil {
		logrus.Error("Error getting meridian orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения заказов")
		return
	}

	dtoOrders := make([]dto.MeridianOrderResponse, len(orders))
	for i, o := range orders {
		dtoOrders[i] = dto.MeridianOrderResponse{
			ID:     o.ID,
			Status: o.Status,
			Date:   o.Date,
		}
	}

	c.JSON(http.StatusOK, dto.MeridianOrderListResponse{
		Orders: dtoOrders,
		Total:  len(dtoOrders),
	})
}

// SaveMeridianOrder создает или изменяет заказ Меридиан
// @Summary Сохранение заказа Меридиан
// @Description Новый заказ стартует как "не заказан" с сегодняшней датой
// @Tags MeridianOrders
// @Accept json
// @Produce json
// @Param order body dto.SaveMeridianOrderRequest true "Данные заказа"
// @Success 200 {object} dto.MeridianOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders/meridian [post]
func (h *Handler) SaveMeridianOrder(c *gin.Context) {
	var req dto.SaveMeridianOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректные данные заказа")
		return
	}

	order, err := h.Repository.SaveMeridianOrder(ds.MeridianOrder{
		ID:     req.ID,
		Status: req.Status,
		Date:   req.Date,
	})
	if err != nil {
		logrus.Error("Error saving meridian order: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения заказа")
		return
	}

	c.JSON(http.StatusOK, dto.MeridianOrderResponse{
		ID:     order.ID,
		Status: order.Status,
		Date:   order.Date,
	})
}

// DeleteMeridianOrder удаляет заказ Меридиан
// @Summary Удаление заказа Меридиан
// @Description Удаляет заказ вместе с его позициями
// @Tags MeridianOrders
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders/meridian/{id} [delete]
func (h *Handler) DeleteMeridianOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный ID")
		return
	}

	if err := h.Repository.DeleteMeridianOrder(id); err != nil {
		logrus.Error("Error deleting meridian order: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления заказа")
		return
	}

	h.successResponse(c, http.StatusOK, "Заказ удален", nil)
}

// SetMeridianStatus выставляет статус заказа Меридиан
// @Summary Смена статуса заказа Меридиан
// @Description Записывает переданный статус напрямую, без проверки переходов
// @Tags MeridianOrders
// @Accept json
// @Produce json
// @Param id path int true "ID заказа"
// @Param status body dto.SetStatusRequest true "Новый статус"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders/meridian/{id}/status [put]
func (h *Handler) SetMeridianStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный ID")
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный статус")
		return
	}

	if err := h.Repository.SetMeridianStatus(id, req.Status); err != nil {
		logrus.Error("Error setting meridian status: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка смены статуса")
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{ID: id, Status: req.Status})
}

// GetMeridianItems получает позиции заказа Меридиан
// @Summary Получение позиций заказа Меридиан
// @Description Возвращает позиции в порядке добавления
// @Tags MeridianOrders
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {array} dto.MeridianItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders/meridian/{id}/items [get]
func (h *Handler) GetMeridianItems(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный ID")
		return
	}

	items, err := h.Repository.GetMeridianItems(id)
	if err != nil {
		logrus.Error("Error getting meridian items: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения позиций")
		return
	}

	c.JSON(http.StatusOK, meridianItemsToDTO(items))
}

// ReplaceMeridianItems заменяет весь список позиций заказа Меридиан
// @Summary Замена позиций заказа Меридиан
// @Description Атомарно заменяет список позиций и возвращает его с новыми id
// @Tags MeridianOrders
// @Accept json
// @Produce json
// @Param id path int true "ID заказа"
// @Param items body dto.ReplaceMeridianItemsRequest true "Новый список позиций"
// @Success 200 {array} dto.MeridianItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders/meridian/{id}/items [put]
func (h *Handler) ReplaceMeridianItems(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный ID")
		return
	}

	var req dto.ReplaceMeridianItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный список позиций")
		return
	}

	items := make([]ds.MeridianOrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = ds.MeridianOrderItem{ProductName: it.ProductName, Qty: it.Qty}
	}

	saved, err := h.Repository.ReplaceMeridianItems(id, items)
	if err != nil {
		logrus.Error("Error replacing meridian items: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка замены позиций")
		return
	}

	c.JSON(http.StatusOK, meridianItemsToDTO(saved))
}

func meridianItemsToDTO(items []ds.MeridianOrderItem) []dto.MeridianItemResponse {
	dtoItems := make([]dto.MeridianItemResponse, len(items))
	for i, it := range items {
		dtoItems[i] = dto.MeridianItemResponse{
			ID:          it.ID,
			OrderID:     it.OrderID,
			ProductName: it.ProductName,
			Qty:         it.Qty,
		}
	}
	return dtoItems
}
