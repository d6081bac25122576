package repository

import (
	"time"

	"ussurochki/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с заказами Меридиан

// Список заказов Меридиан, свежие сверху. Пустой статус - без фильтра.
func (r *Repository) ListMeridianOrders(status string) ([]ds.MeridianOrder, error) {
	q := r.db.Order("date DESC, id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []ds.MeridianOrder
	err := q.Find(&orders).Error
	return orders, err
}

// SaveMeridianOrder создает заказ или перезаписывает все поля. Новый
// заказ всегда стартует как "не заказан" с сегодняшней датой, переданные
// значения игнорируются.
func (r *Repository) SaveMeridianOrder(order ds.MeridianOrder) (ds.MeridianOrder, error) {
	if order.ID == 0 {
		order.Status = ds.StatusNotOrdered
		order.Date = time.Now().Format("2006-01-02")
		err := r.db.Create(&order).Error
		return order, err
	}
	// обновление несуществующего id ничего не делает и не считается ошибкой
	err := r.db.Model(&ds.MeridianOrder{}).Where("id = ?", order.ID).Select("*").Updates(order).Error
	return order, err
}

// DeleteMeridianOrder удаляет заказ вместе с позициями, в одной транзакции
func (r *Repository) DeleteMeridianOrder(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&ds.MeridianOrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.MeridianOrder{}, id).Error
	})
}

// SetMeridianStatus выставляет статус напрямую, без проверки переходов
func (r *Repository) SetMeridianStatus(id uint, status string) error {
	return r.db.Model(&ds.MeridianOrder{}).Where("id = ?", id).Update("status", status).Error
}

// Позиции заказа в порядке добавления
func (r *Repository) GetMeridianItems(orderID uint) ([]ds.MeridianOrderItem, error) {
	var items []ds.MeridianOrderItem
	err := r.db.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

// ReplaceMeridianItems - атомарная замена списка позиций, как у МКЛ,
// только товар здесь свободный текст
func (r *Repository) ReplaceMeridianItems(orderID uint, items []ds.MeridianOrderItem) ([]ds.MeridianOrderItem, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&ds.MeridianOrderItem{}).Error; err != nil {
			return err
		}
		for _, it := range items {
			row := ds.MeridianOrderItem{
				OrderID:     orderID,
				ProductName: it.ProductName,
				Qty:         it.Qty,
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

	return r.GetMeridianItems(orderID)
}
