package ds

// 5. Таблица заказов Меридиан - без привязки к клиенту
type MeridianOrder struct {
	ID     uint   `gorm:"primaryKey"`
	Status string `gorm:"type:varchar(20);not null"` // не заказан, заказан
	Date   string `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
}

func (MeridianOrder) TableName() string {
	return "orders_meridian"
}

// 6. Позиции заказа Меридиан - товар задается свободным текстом, не из каталога
type MeridianOrderItem struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     uint   `gorm:"not null;index"`
	ProductName string `gorm:"type:varchar(200);not null"`
	Qty         int    `gorm:"not null;default:1"`
}

func (MeridianOrderItem) TableName() string {
	return "order_items_meridian"
}
