package repository

import (
	"time"

	"ussurochki/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с заказами МКЛ

// Заказ МКЛ вместе с данными клиента (для списков и экспорта)
type MklOrderInfo struct {
	ID         uint
	ClientID   uint
	Status     string
	Date       string
	Notes      string
	ClientName string
	Phone      string
}

// Позиция заказа МКЛ с названием товара из каталога
type MklItemInfo struct {
	ID          uint
	OrderID     uint
	ProductID   uint
	Qty         int
	ProductName string
}

// Список заказов МКЛ, свежие сверху. Пустой статус - без фильтра.
func (r *Repository) ListMklOrders(status string) ([]MklOrderInfo, error) {
	q := r.db.Table("orders_mkl o").
		Select("o.id, o.client_id, o.status, o.date, o.notes, c.name AS client_name, c.phone").
		Joins("LEFT JOIN clients c ON c.id = o.client_id").
		Order("o.date DESC, o.id DESC")
	if status != "" {
		q = q.Where("o.status = ?", status)
	}

	var orders []MklOrderInfo
	err := q.Scan(&orders).Error
	return orders, err
}

// SaveMklOrder создает заказ (нулевой id) или перезаписывает все поля.
// Пустому статусу и дате подставляются значения по умолчанию.
func (r *Repository) SaveMklOrder(order ds.MklOrder) (ds.MklOrder, error) {
	if order.Status == "" {
		order.Status = ds.StatusNotOrdered
	}
	if order.Date == "" {
		order.Date = time.Now().Format("2006-01-02")
	}
	if order.ID == 0 {
		err := r.db.Create(&order).Error
		return order, err
	}
	// обновление несуществующего id ничего не делает и не считается ошибкой
	err := r.db.Model(&ds.MklOrder{}).Where("id = ?", order.ID).Select("*").Updates(order).Error
	return order, err
}

// DeleteMklOrder удаляет заказ вместе с позициями, в одной транзакции
func (r *Repository) DeleteMklOrder(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&ds.MklOrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.MklOrder{}, id).Error
	})
}

// SetMklStatus выставляет статус напрямую, без проверки переходов
func (r *Repository) SetMklStatus(id uint, status string) error {
	return r.db.Model(&ds.MklOrder{}).Where("id = ?", id).Update("status", status).Error
}

// Позиции заказа в порядке добавления
func (r *Repository) GetMklItems(orderID uint) ([]MklItemInfo, error) {
	var items []MklItemInfo
	err := r.db.Table("order_items_mkl i").
		Select("i.id, i.order_id, i.product_id, i.qty, p.name AS product_name").
		Joins("LEFT JOIN products p ON p.id = i.product_id").
		Where("i.order_id = ?", orderID).
		Order("i.id").
		Scan(&items).Error
	return items, err
}

// ReplaceMklItems атомарно заменяет весь список позиций заказа: старые
// позиции удаляются и новые вставляются в одной транзакции, частичная
// замена невозможна. Возвращает свежий список с присвоенными id.
// Нулевое количество трактуется как единица (поведение исходного
// приложения).
func (r *Repository) ReplaceMklItems(orderID uint, items []ds.MklOrderItem) ([]MklItemInfo, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&ds.MklOrderItem{}).Error; err != nil {
			return err
		}
		for _, it := range items {
			row := ds.MklOrderItem{
				OrderID:   orderID,
				ProductID: it.ProductID,
				Qty:       it.Qty,
			}
			if row.Qty == 0 {
				row.Qty = 1
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetMklItems(orderID)
}
