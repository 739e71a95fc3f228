package service

import (
	"errors"

	"go-store-pos/internal/model"
	"go-store-pos/internal/repository"
	"go-store-pos/pkg/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService interface {
	CreateSeller(req *model.Seller) error
	GetAllSellers() ([]model.Seller, error)
	CreateCustomer(req *model.Customer) error
	GetAllCustomers() ([]model.Customer, error)
	CreateProduct(req *model.Product) error
	GetAllProducts() ([]model.Product, error)
}

type catalogService struct {
	sellerRepo   repository.SellerRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

func NewCatalogService(sRepo repository.SellerRepository, cRepo repository.CustomerRepository, pRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		sellerRepo:   sRepo,
		customerRepo: cRepo,
		productRepo:  pRepo,
	}
}

func (s *catalogService) CreateSeller(req *model.Seller) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return invalid(nil, "name and contact number are required fields")
	}

	existing, err := s.sellerRepo.FindByNameAndContact(req.SellerName, req.ContactNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return &StoreError{Op: "lookup seller", Err: err}
	}
	if existing != nil {
		return invalid(ErrDuplicateRecord, "seller with this name and contact already exists")
	}

	if err := s.sellerRepo.Create(req); err != nil {
		return &StoreError{Op: "create seller", Err: err}
	}
	return nil
}

func (s *catalogService) GetAllSellers() ([]model.Seller, error) {
	sellers, err := s.sellerRepo.FindAll()
	if err != nil {
		return nil, &StoreError{Op: "list sellers", Err: err}
	}
	return sellers, nil
}

func (s *catalogService) CreateCustomer(req *model.Customer) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return invalid(nil, "name and contact number are required fields")
	}

	existing, err := s.customerRepo.FindByNameAndContact(req.CustomerName, req.ContactNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return &StoreError{Op: "lookup customer", Err: err}
	}
	if existing != nil {
		return invalid(ErrDuplicateRecord, "customer with this name and contact already exists")
	}

	if err := s.customerRepo.Create(req); err != nil {
		return &StoreError{Op: "create customer", Err: err}
	}
	return nil
}

func (s *catalogService) GetAllCustomers() ([]model.Customer, error) {
	customers, err := s.customerRepo.FindAll()
	if err != nil {
		return nil, &StoreError{Op: "list customers", Err: err}
	}
	return customers, nil
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return invalid(nil, "name and price are required fields")
	}
	if err := checkPrice(req.Price); err != nil {
		return err
	}

	existing, err := s.productRepo.FindByName(req.ProductName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return &StoreError{Op: "lookup product", Err: err}
	}
	if existing != nil {
		return invalid(ErrDuplicateRecord, "product name already exists")
	}

	if err := s.productRepo.Create(req); err != nil {
		return &StoreError{Op: "create product", Err: err}
	}
	return nil
}

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, &StoreError{Op: "list products", Err: err}
	}
	return products, nil
}

// checkPrice enforces a positive amount representable as decimal(10,2).
func checkPrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return invalid(nil, "price must be a positive amount")
	}
	if price.Exponent() < -2 {
		return invalid(nil, "price cannot have more than two decimal places")
	}
	return nil
}
