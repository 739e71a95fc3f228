package repository

import (
	"errors"
	"time"

	"go-store-pos/internal/model"

	"gorm.io/gorm"
)

// ErrStockConflict is returned when a decrement would take stock below zero.
var ErrStockConflict = errors.New("stock conflict: not enough quantity remaining")

type InventoryRepository interface {
	FindAll() ([]model.Inventory, error)
	FindByProductID(productID uint) (*model.Inventory, error)
	// GetStock returns the current quantity for a product. The second return
	// distinguishes "no inventory record" from a recorded zero.
	GetStock(productID uint) (int, bool, error)
	// AddStock performs the additive restock upsert. It takes a tx so callers
	// can compose it with other writes.
	AddStock(tx *gorm.DB, productID uint, delta int, restocked time.Time) (*model.Inventory, error)
	// DecrementStock subtracts delta inside an externally managed transaction.
	// The update is conditional on quantity >= delta so stock can never go
	// negative, even under concurrent commits; a zero rows-affected result
	// surfaces as ErrStockConflict.
	DecrementStock(tx *gorm.DB, productID uint, delta int) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) FindAll() ([]model.Inventory, error) {
	var records []model.Inventory
	err := r.db.Preload("Product").Order("inventory_id").Find(&records).Error
	return records, err
}

func (r *inventoryRepo) FindByProductID(productID uint) (*model.Inventory, error) {
	var record model.Inventory
	err := r.db.First(&record, "product_id = ?", productID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *inventoryRepo) GetStock(productID uint) (int, bool, error) {
	var record model.Inventory
	err := r.db.Select("quantity").First(&record, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return record.Quantity, true, nil
}

func (r *inventoryRepo) AddStock(tx *gorm.DB, productID uint, delta int, restocked time.Time) (*model.Inventory, error) {
	var record model.Inventory
	err := tx.First(&record, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = model.Inventory{
			ProductID:     productID,
			Quantity:      delta,
			LastRestocked: restocked,
		}
		if err := tx.Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}
	if err != nil {
		return nil, err
	}

	// Expression-based add, like DecrementStock, so a decrement landing
	// between our read and write is never overwritten.
	if err := tx.Model(&model.Inventory{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"quantity":       gorm.Expr("quantity + ?", delta),
			"last_restocked": restocked,
		}).Error; err != nil {
		return nil, err
	}

	if err := tx.First(&record, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *inventoryRepo) DecrementStock(tx *gorm.DB, productID uint, delta int) error {
	result := tx.Model(&model.Inventory{}).
		Where("product_id = ? AND quantity >= ?", productID, delta).
		Update("quantity", gorm.Expr("quantity - ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStockConflict
	}
	return nil
}
