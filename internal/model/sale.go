package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a committed sale header. Immutable once written.
type Sale struct {
	SaleID      uint            `gorm:"column:sale_id;primaryKey" json:"sale_id"`
	CustomerID  uint            `gorm:"column:customer_id" json:"customer_id"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID;references:CustomerID" json:"customer,omitempty"`
	SellerID    uint            `gorm:"column:seller_id" json:"seller_id"`
	Seller      *Seller         `gorm:"foreignKey:SellerID;references:SellerID" json:"seller,omitempty"`
	SaleDate    time.Time       `gorm:"column:sale_date" json:"sale_date"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`
	Items       []SaleItem      `gorm:"foreignKey:SaleID;references:SaleID" json:"items,omitempty"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one persisted line of a sale, with the unit price captured at
// the moment the line was added to the session.
type SaleItem struct {
	ItemID    uint            `gorm:"column:item_id;primaryKey" json:"item_id"`
	SaleID    uint            `gorm:"column:sale_id;not null" json:"sale_id"`
	ProductID uint            `gorm:"column:product_id;not null" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID;references:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(10,2);not null" json:"unit_price"`
}

func (SaleItem) TableName() string {
	return "sale_items"
}

// SaleLineItem is one line of a sale-in-progress. It lives only inside a sale
// session and is discarded on commit or reset.
type SaleLineItem struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}
