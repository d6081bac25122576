package handler

import (
	"net/http"

	"ussurochki/internal/app/ds"
	"ussurochki/internal/app/dto"
	"ussurochki/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЗАКАЗЫ МКЛ ============

// GetMklOrders получает список заказов МКЛ
// @Summary Получение списка заказов МКЛ
// @Description Возвращает заказы с данными клиента, свежие сверху, с фильтром по статусу
// @Tags MklOrders
// @Produce json
// @Param status query string false "Точный фильтр по статусу"
// @Success 200 {object} dto.MklOrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders/mkl [get]
func (h *Handler) GetMklOrders(c *gin.Context) {
	orders, err := h.Repository.ListMklOrders(c.Query("status"))
	if err != nil {
		logrus.Error("Error getting mkl orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения заказов")
		return
	}

	dtoOrders := make([]dto.MklOrderResponse, len(orders))
	for i, o := range orders {
		dtoOrders[i] = dto.MklOrderResponse{
			ID:         o.ID,
			ClientID:   o.ClientID,
			Status:     o.Status,
			Date:       o.Date,
			Notes:      o.Notes,
			ClientName: o.ClientName,
			Phone:      o.Phone,
		}
	}

	c.JSON(http.StatusOK, dto.MklOrderListResponse{
		Orders: dtoOrders,
		Total:  len(dtoOrders),
	})
}

// SaveMklOrder создает или изменяет заказ МКЛ
// @Summary Сохранение заказа МКЛ
// @Description Создает заказ (без id) или перезаписывает все поля (с id)
// @Tags MklOrders
// @Accept json
// @Produce json
// @Param order body dto.SaveMklOrderRequest true "Данные заказа"
// @Success 200 {object} dto.MklOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders/mkl [post]
func (h *Handler) SaveMklOrder(c *gin.Context) {
	var req dto.SaveMklOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректные данные заказа")
		return
	}

	order, err := h.Repository.SaveMklOrder(ds.MklOrder{
		ID:       req.ID,
		ClientID: req.ClientID,
		Status:   req.Status,
		Date:     req.Date,
		Notes:    req.Notes,
	})
	if err != nil {
		logrus.Error("Error saving mkl order: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения заказа")
		return
	}

	c.JSON(http.StatusOK, dto.MklOrderResponse{
		ID:       order.ID,
		ClientID: order.ClientID,
		Status:   order.Status,
		Date:     order.Date,
		Notes:    order.Notes,
	})
}

// DeleteMklOrder удаляет заказ МКЛ
// @Summary Удаление заказа МКЛ
// @Description Удаляет заказ вместе с его позициями
// @Tags MklOrders
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders/mkl/{id} [delete]
func (h *Handler) DeleteMklOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный ID")
		return
	}

	if err := h.Repository.DeleteMklOrder(id); err != nil {
		logrus.Error("Error deleting mkl order: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления заказа")
		return
	}

	h.successResponse(c, http.StatusOK, "Заказ удален", nil)
}

// SetMklStatus выставляет статус заказа МКЛ
// @Summary Смена статуса заказа МКЛ
// @Description Записывает переданный статус напрямую, без проверки переходов
// @Tags MklOrders
// @Accept json
// @Produce json
// @Param id path int true "ID заказа"
// @Param status body dto.SetStatusRequest true "Новый статус"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders/mkl/{id}/status [put]
func (h *Handler) SetMklStatus(c *gin.Context) {
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

	if err := h.Repository.SetMklStatus(id, req.Status); err != nil {
		logrus.Error("Error setting mkl status: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка смены статуса")
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{ID: id, Status: req.Status})
}

// GetMklItems получает позиции заказа МКЛ
// @Summary Получение позиций заказа МКЛ
// @Description Возвращает позиции с названиями товаров в порядке добавления
// @Tags MklOrders
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {array} dto.MklItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders/mkl/{id}/items [get]
func (h *Handler) GetMklItems(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный ID")
		return
	}

	items, err := h.Repository.GetMklItems(id)
	if err != nil {
		logrus.Error("Error getting mkl items: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения позиций")
		return
	}

	c.JSON(http.StatusOK, mklItemsToDTO(items))
}

// ReplaceMklItems заменяет весь список позиций заказа МКЛ
// @Summary Замена позиций заказа МКЛ
// @Description Атомарно заменяет список позиций и возвращает его с новыми id
// @Tags MklOrders
// @Accept json
// @Produce json
// @Param id path int true "ID заказа"
// @Param items body dto.ReplaceMklItemsRequest true "Новый список позиций"
// @Success 200 {array} dto.MklItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/orders/mkl/{id}/items [put]
func (h *Handler) ReplaceMklItems(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный ID")
		return
	}

	var req dto.ReplaceMklItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный список позиций")
		return
	}

	items := make([]ds.MklOrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = ds.MklOrderItem{ProductID: it.ProductID, Qty: it.Qty}
	}

	saved, err := h.Repository.ReplaceMklItems(id, items)
	if err != nil {
		logrus.Error("Error replacing mkl items: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка замены позиций")
		return
	}

	c.JSON(http.StatusOK, mklItemsToDTO(saved))
}

func mklItemsToDTO(items []repository.MklItemInfo) []dto.MklItemResponse {
	dtoItems := make([]dto.MklItemResponse, len(items))
	for i, it := range items {
		dtoItems[i] = dto.MklItemResponse{
			ID:          it.ID,
			OrderID:     it.OrderID,
			ProductID:   it.ProductID,
			Qty:         it.Qty,
			ProductName: it.ProductName,
		}
	}
	return dtoItems
}
