package repository

import (
	"go-store-pos/internal/model"

	"gorm.io/gorm"
)

type SellerRepository interface {
	Create(seller *model.Seller) error
	FindAll() ([]model.Seller, error)
	FindByID(id uint) (*model.Seller, error)
	FindByNameAndContact(name, contact string) (*model.Seller, error)
}

type sellerRepo struct {
	db *gorm.DB
}

func NewSellerRepo(db *gorm.DB) SellerRepository {
	return &sellerRepo{db}
}

func (r *sellerRepo) Create(seller *model.Seller) error {
	return r.db.Create(seller).Error
}

func (r *sellerRepo) FindAll() ([]model.Seller, error) {
	var sellers []model.Seller
	err := r.db.Order("seller_id").Find(&sellers).Error
	return sellers, err
}

func (r *sellerRepo) FindByID(id uint) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.First(&seller, "seller_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepo) FindByNameAndContact(name, contact string) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.First(&seller, "seller_name = ? AND contact_number = ?", name, contact).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}
