package service

import (
	"testing"

	"go-store-pos/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSellerRepo struct {
	sellers []model.Seller
}

func (f *fakeSellerRepo) Create(seller *model.Seller) error {
	f.sellers = append(f.sellers, *seller)
	return nil
}

func (f *fakeSellerRepo) FindAll() ([]model.Seller, error) { return f.sellers, nil }

func (f *fakeSellerRepo) FindByID(id uint) (*model.Seller, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSellerRepo) FindByNameAndContact(name, contact string) (*model.Seller, error) {
	for _, s := range f.sellers {
		if s.SellerName == name && s.ContactNumber == contact {
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCustomerRepo struct {
	customers []model.Customer
}

func (f *fakeCustomerRepo) Create(customer *model.Customer) error {
	f.customers = append(f.customers, *customer)
	return nil
}

func (f *fakeCustomerRepo) FindAll() ([]model.Customer, error) { return f.customers, nil }

func (f *fakeCustomerRepo) FindByID(id uint) (*model.Customer, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) FindByNameAndContact(name, contact string) (*model.Customer, error) {
	for _, c := range f.customers {
		if c.CustomerName == name && c.ContactNumber == contact {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCatalogProductRepo struct {
	products []model.Product
}

func (f *fakeCatalogProductRepo) Create(product *model.Product) error {
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeCatalogProductRepo) FindAll() ([]model.Product, error) { return f.products, nil }

func (f *fakeCatalogProductRepo) FindByID(id uint) (*model.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogProductRepo) FindByName(name string) (*model.Product, error) {
	for _, p := range f.products {
		if p.ProductName == name {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newCatalogFixture() CatalogService {
	return NewCatalogService(&fakeSellerRepo{}, &fakeCustomerRepo{}, &fakeCatalogProductRepo{})
}

func TestCreateSellerRequiresNameAndContact(t *testing.T) {
	svc := newCatalogFixture()

	err := svc.CreateSeller(&model.Seller{SellerName: "Bo"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	err = svc.CreateSeller(&model.Seller{ContactNumber: "0700000002"})
	require.ErrorAs(t, err, &ve)

	require.NoError(t, svc.CreateSeller(&model.Seller{SellerName: "Bo", ContactNumber: "0700000002"}))
}

func TestCreateSellerRejectsDuplicateNameContactPair(t *testing.T) {
	svc := newCatalogFixture()

	require.NoError(t, svc.CreateSeller(&model.Seller{SellerName: "Bo", ContactNumber: "0700000002"}))

	err := svc.CreateSeller(&model.Seller{SellerName: "Bo", ContactNumber: "0700000002"})
	require.ErrorIs(t, err, ErrDuplicateRecord)

	// Same name with a different contact is a different seller.
	require.NoError(t, svc.CreateSeller(&model.Seller{SellerName: "Bo", ContactNumber: "0700000003"}))
}

func TestCreateCustomerRejectsDuplicateNameContactPair(t *testing.T) {
	svc := newCatalogFixture()

	require.NoError(t, svc.CreateCustomer(&model.Customer{CustomerName: "Ada", ContactNumber: "0700000001"}))

	err := svc.CreateCustomer(&model.Customer{CustomerName: "Ada", ContactNumber: "0700000001"})
	require.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestCreateProductValidatesPrice(t *testing.T) {
	svc := newCatalogFixture()
	var ve *ValidationError

	err := svc.CreateProduct(&model.Product{ProductName: "Coffee Beans", Price: money("0")})
	require.ErrorAs(t, err, &ve)

	err = svc.CreateProduct(&model.Product{ProductName: "Coffee Beans", Price: money("-1.50")})
	require.ErrorAs(t, err, &ve)

	err = svc.CreateProduct(&model.Product{ProductName: "Coffee Beans", Price: money("5.001")})
	require.ErrorAs(t, err, &ve)

	require.NoError(t, svc.CreateProduct(&model.Product{ProductName: "Coffee Beans", Price: money("5.00")}))
}

func TestCreateProductRejectsDuplicateName(t *testing.T) {
	svc := newCatalogFixture()

	require.NoError(t, svc.CreateProduct(&model.Product{ProductName: "Coffee Beans", Price: money("5.00")}))

	err := svc.CreateProduct(&model.Product{ProductName: "Coffee Beans", Price: money("6.00")})
	require.ErrorIs(t, err, ErrDuplicateRecord)
}
