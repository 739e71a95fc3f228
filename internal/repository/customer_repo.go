package repository

import (
	"go-store-pos/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll() ([]model.Customer, error)
	FindByID(id uint) (*model.Customer, error)
	FindByNameAndContact(name, contact string) (*model.Customer, error)
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Order("customer_id").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(id uint) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "customer_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindByNameAndContact(name, contact string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "customer_name = ? AND contact_number = ?", name, contact).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
