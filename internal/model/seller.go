package model

// Seller is a store employee that can be attached to a sale.
type Seller struct {
	SellerID      uint   `gorm:"column:seller_id;primaryKey" json:"seller_id"`
	SellerName    string `gorm:"column:seller_name;type:varchar(100);not null;uniqueIndex:unique_seller" json:"seller_name" validate:"required"`
	ContactNumber string `gorm:"column:contact_number;type:varchar(15);not null;uniqueIndex:unique_seller" json:"contact_number" validate:"required"`
	Email         string `gorm:"column:email;type:varchar(100)" json:"email" validate:"omitempty,email"`
}

func (Seller) TableName() string {
	return "sellers"
}
