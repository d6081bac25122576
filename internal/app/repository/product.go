package repository

import (
	"ussurochki/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с каталогом товаров

// Список товаров с поиском по названию
func (r *Repository) ListProducts(query string) ([]ds.Product, error) {
	var products []ds.Product
	q := r.db.Order("name")
	if query != "" {
		q = q.Where("name LIKE ?", "%"+query+"%")
	}
	err := q.Find(&products).Error
	return products, err
}

// SaveProduct создает товар (нулевой id) или перезаписывает все поля.
// Обновление несуществующего id ничего не делает и не считается ошибкой.
func (r *Repository) SaveProduct(product ds.Product) (ds.Product, error) {
	if product.ID == 0 {
		err := r.db.Create(&product).Error
		return product, err
	}
	err := r.db.Model(&ds.Product{}).Where("id = ?", product.ID).Select("*").Updates(product).Error
	return product, err
}

// DeleteProduct удаляет товар и все позиции заказов, которые на него
// ссылаются. Сами заказы остаются, теряя только эти позиции.
func (r *Repository) DeleteProduct(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&ds.MklOrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Product{}, id).Error
	})
}
