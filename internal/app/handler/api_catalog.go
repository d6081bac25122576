package handler

import (
	"net/http"

	"ussurochki/internal/app/ds"
	"ussurochki/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КЛИЕНТЫ ============

// GetClients получает список клиентов
// @Summary Получение списка клиентов
// @Description Возвращает клиентов с возможностью поиска по имени или телефону
// @Tags Clients
// @Produce json
// @Param query query string false "Поиск по имени или телефону"
// @Success 200 {object} dto.ClientListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/clients [get]
func (h *Handler) GetClients(c *gin.Context) {
	clients, err := h.Repository.ListClients(c.Query("query"))
	if err != nil {
		logrus.Error("Error getting clients: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения клиентов")
		return
	}

	dtoClients := make([]dto.ClientResponse, len(clients))
	for i, cl := range clients {
		dtoClients[i] = dto.ClientResponse{
			ID:    cl.ID,
			Name:  cl.Name,
			Phone: cl.Phone,
		}
	}

	c.JSON(http.StatusOK, dto.ClientListResponse{
		Clients: dtoClients,
		Total:   len(dtoClients),
	})
}

// SaveClient создает или изменяет клиента
// @Summary Сохранение клиента
// @Description Создает клиента (без id) или перезаписывает все поля (с id)
// @Tags Clients
// @Accept json
// @Produce json
// @Param client body dto.SaveClientRequest true "Данные клиента"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/clients [post]
func (h *Handler) SaveClient(c *gin.Context) {
	var req dto.SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректные данные клиента")
		return
	}

	client, err := h.Repository.SaveClient(ds.Client{
		ID:    req.ID,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		logrus.Error("Error saving client: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения клиента")
		return
	}

	c.JSON(http.StatusOK, dto.ClientResponse{
		ID:    client.ID,
		Name:  client.Name,
		Phone: client.Phone,
	})
}

// DeleteClient удаляет клиента вместе с его заказами
// @Summary Удаление клиента
// @Description Каскадно удаляет клиента, его заказы МКЛ и их позиции
// @Tags Clients
// @Produce json
// @Param id path int true "ID клиента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/clients/{id} [delete]
func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный ID")
		return
	}

	if err := h.Repository.DeleteClient(id); err != nil {
		logrus.Error("Error deleting client: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления клиента")
		return
	}

	h.successResponse(c, http.StatusOK, "Клиент удален", nil)
}

// ============ ДОМЕН ТОВАРЫ ============

// GetProducts получает список товаров
// @Summary Получение списка товаров
// @Description Возвращает каталог товаров с возможностью поиска по названию
// @Tags Products
// @Produce json
// @Param query query string false "Поиск по названию товара"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.Repository.ListProducts(c.Query("query"))
	if err != nil {
		logrus.Error("Error getting products: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения товаров")
		return
	}

	dtoProducts := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		dtoProducts[i] = dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		}
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products: dtoProducts,
		Total:    len(dtoProducts),
	})
}

// SaveProduct создает или изменяет товар
// @Summary Сохранение товара
// @Description Создает товар (без id) или перезаписывает все поля (с id)
// @Tags Products
// @Accept json
// @Produce json
// @Param product body dto.SaveProductRequest true "Данные товара"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/products [post]
func (h *Handler) SaveProduct(c *gin.Context) {
	var req dto.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректные данные товара")
		return
	}

	product, err := h.Repository.SaveProduct(ds.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		logrus.Error("Error saving product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения товара")
		return
	}

	c.JSON(http.StatusOK, dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	})
}

// DeleteProduct удаляет товар из каталога
// @Summary Удаление товара
// @Description Удаляет товар и все позиции заказов, ссылающиеся на него
// @Tags Products
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorResponse(c, http.StatusBadRequest, "Некорректный ID")
		return
	}

	if err := h.Repository.DeleteProduct(id); err != nil {
		logrus.Error("Error deleting product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления товара")
		return
	}

	h.successResponse(c, http.StatusOK, "Товар удален", nil)
}
