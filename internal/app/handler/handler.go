package handler

import (
	"strconv"

	"ussurochki/internal/app/dto"
	"ussurochki/internal/app/export"
	"ussurochki/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// Handler содержит обработчики для REST API
type Handler struct {
	Repository *repository.Repository
	Exporter   *export.Exporter
}

func NewHandler(r *repository.Repository, e *export.Exporter) *Handler {
	return &Handler{
		Repository: r,
		Exporter:   e,
	}
}

// ============ Вспомогательные функции ============

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
