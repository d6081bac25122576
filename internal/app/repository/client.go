package repository

import (
	"ussurochki/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с клиентами

// Список клиентов с поиском по имени или телефону
func (r *Repository) ListClients(query string) ([]ds.Client, error) {
	var clients []ds.Client
	q := r.db.Order("name")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name LIKE ? OR phone LIKE ?", like, like)
	}
	err := q.Find(&clients).Error
	return clients, err
}

// SaveClient создает клиента (нулевой id) или перезаписывает все поля.
// Обновление несуществующего id ничего не делает и не считается ошибкой.
func (r *Repository) SaveClient(client ds.Client) (ds.Client, error) {
	if client.ID == 0 {
		err := r.db.Create(&client).Error
		return client, err
	}
	err := r.db.Model(&ds.Client{}).Where("id = ?", client.ID).Select("*").Updates(client).Error
	return client, err
}

// DeleteClient удаляет клиента с каскадом: сначала позиции его заказов,
// потом сами заказы, потом клиент. Все в одной транзакции.
func (r *Repository) DeleteClient(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		orderIDs := tx.Model(&ds.MklOrder{}).Select("id").Where("client_id = ?", id)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&ds.MklOrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&ds.MklOrder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Client{}, id).Error
	})
}
