package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Клиенты (Clients) ============

type SaveClientRequest struct {
	ID    uint   `json:"id"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type ClientResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// ============ Товары (Products) ============

type SaveProductRequest struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"omitempty,gte=0"`
}

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// ============ Заказы МКЛ (MKL Orders) ============

type SaveMklOrderRequest struct {
	ID       uint   `json:"id"`
	ClientID uint   `json:"client_id" binding:"required"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
}

type MklOrderResponse struct {
	ID         uint   `json:"id"`
	ClientID   uint   `json:"client_id"`
	Status     string `json:"status"`
	Date       string `json:"date"`
	Notes      string `json:"notes"`
	ClientName string `json:"client_name"`
	Phone      string `json:"phone"`
}

type MklOrderListResponse struct {
	Orders []MklOrderResponse `json:"orders"`
	Total  int                `json:"total"`
}

type MklItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Qty       int  `json:"qty"`
}

type ReplaceMklItemsRequest struct {
	Items []MklItemRequest `json:"items"`
}

type MklItemResponse struct {
	ID          uint   `json:"id"`
	OrderID     uint   `json:"order_id"`
	ProductID   uint   `json:"product_id"`
	Qty         int    `json:"qty"`
	ProductName string `json:"product_name"`
}

// ============ Заказы Меридиан (Meridian Orders) ============

type SaveMeridianOrderRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

type MeridianOrderResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

type MeridianOrderListResponse struct {
	Orders []MeridianOrderResponse `json:"orders"`
	Total  int                     `json:"total"`
}

type MeridianItemRequest struct {
	ProductName string `json:"product_name" binding:"required"`
	Qty         int    `json:"qty"`
}

type ReplaceMeridianItemsRequest struct {
	Items []MeridianItemRequest `json:"items"`
}

type MeridianItemResponse struct {
	ID          uint   `json:"id"`
	OrderID     uint   `json:"order_id"`
	ProductName string `json:"product_name"`
	Qty         int    `json:"qty"`
}

// ============ Статусы и экспорт ============

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type StatusResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type ExportResponse struct {
	File string `json:"file"`
}
