package model

import "time"

// Inventory holds the stock level of one product. Quantity is kept
// non-negative by the database check and the conditional decrement in the
// inventory repository.
type Inventory struct {
	InventoryID   uint      `gorm:"column:inventory_id;primaryKey" json:"inventory_id"`
	ProductID     uint      `gorm:"column:product_id;not null;uniqueIndex:unique_inventory" json:"product_id" validate:"required"`
	Product       *Product  `gorm:"foreignKey:ProductID;references:ProductID" json:"product,omitempty" validate:"-"`
	Quantity      int       `gorm:"column:quantity;not null;default:0;check:quantity >= 0" json:"quantity"`
	LastRestocked time.Time `gorm:"column:last_restocked;type:date" json:"last_restocked"`
}

func (Inventory) TableName() string {
	return "inventory"
}
