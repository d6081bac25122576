package handler

import (
	"net/http"

	"ussurochki/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ЭКСПОРТ ============

// ExportMkl выгружает заказы МКЛ в текстовый файл
// @Summary Экспорт заказов МКЛ
// @Description Пишет отчет по заказам МКЛ в новый файл и возвращает его путь
// @Tags Export
// @Produce json
// @Param status query string false "Точный фильтр по статусу"
// @Success 200 {object} dto.ExportResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/export/mkl [post]
func (h *Handler) ExportMkl(c *gin.Context) {
	file, err := h.Exporter.ExportMkl(c.Query("status"))
	if err != nil {
		logrus.Error("Error exporting mkl orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка экспорта")
		return
	}

	c.JSON(http.StatusOK, dto.ExportResponse{File: file})
}

// ExportMeridian выгружает заказы Меридиан в текстовый файл
// @Summary Экспорт заказов Меридиан
// @Description Пишет отчет по заказам Меридиан в новый файл и возвращает его путь
// @Tags Export
// @Produce json
// @Param status query string false "Точный фильтр по статусу"
// @Success 200 {object} dto.ExportResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/export/meridian [post]
func (h *Handler) ExportMeridian(c *gin.Context) {
	file, err := h.Exporter.ExportMeridian(c.Query("status"))
	if err != nil {
		logrus.Error("Error exporting meridian orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка экспорта")
		return
	}

	c.JSON(http.StatusOK, dto.ExportResponse{File: file})
}
