package ds

// 3. Таблица заказов МКЛ
type MklOrder struct {
	ID       uint   `gorm:"primaryKey"`
	ClientID uint   `gorm:"index"`
	Status   string `gorm:"type:varchar(20);not null"` // не заказан, заказан, прозвонен, вручен
	Date     string `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	Notes    string `gorm:"type:text"`
}

func (MklOrder) TableName() string {
	return "orders_mkl"
}

// 4. Позиции заказа МКЛ - ссылка на товар из каталога
type MklOrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"not null;index"`
	ProductID uint `gorm:"not null;index"`
	Qty       int  `gorm:"not null;default:1"`
}

func (MklOrderItem) TableName() string {
	return "order_items_mkl"
}
