package model

type Customer struct {
	CustomerID    uint   `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	CustomerName  string `gorm:"column:customer_name;type:varchar(100);not null;uniqueIndex:unique_customer" json:"customer_name" validate:"required"`
	ContactNumber string `gorm:"column:contact_number;type:varchar(15);not null;uniqueIndex:unique_customer" json:"contact_number" validate:"required"`
	Email         string `gorm:"column:email;type:varchar(100)" json:"email" validate:"omitempty,email"`
}

func (Customer) TableName() string {
	return "customers"
}
