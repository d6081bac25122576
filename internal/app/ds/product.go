package ds

// 2. Таблица товаров (каталог МКЛ) - ТОЛЬКО справочная информация
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:decimal(10,2);not null;default:0"`
}

func (Product) TableName() string {
	return "products"
}
