package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. Price changes never touch past sales because
// sale items store their own unit_price snapshot.
type Product struct {
	ProductID   uint            `gorm:"column:product_id;primaryKey" json:"product_id"`
	ProductName string          `gorm:"column:product_name;type:varchar(100);not null;uniqueIndex:unique_product" json:"product_name" validate:"required"`
	Description string          `gorm:"column:description;type:text" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"column:category;type:varchar(50)" json:"category"`
}

func (Product) TableName() string {
	return "products"
}
