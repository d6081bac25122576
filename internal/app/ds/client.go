package ds

// 1. Таблица клиентов (МКЛ)
type Client struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"type:varchar(100);not null"`
	Phone string `gorm:"type:varchar(30);not null;default:''"`
}

func (Client) TableName() string {
	return "clients"
}
