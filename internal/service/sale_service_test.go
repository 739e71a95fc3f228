package service

import (
	"testing"
	"time"

	"go-store-pos/internal/model"
	"go-store-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProductRepo struct {
	products map[uint]model.Product
}

func (f *fakeProductRepo) Create(p *model.Product) error     { return nil }
func (f *fakeProductRepo) FindAll() ([]model.Product, error) { return nil, nil }

func (f *fakeProductRepo) FindByID(id uint) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) FindByName(name string) (*model.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

type fakeInventoryRepo struct {
	stock map[uint]int
}

func (f *fakeInventoryRepo) FindAll() ([]model.Inventory, error) { return nil, nil }

func (f *fakeInventoryRepo) FindByProductID(productID uint) (*model.Inventory, error) {
	qty, ok := f.stock[productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Inventory{ProductID: productID, Quantity: qty}, nil
}

func (f *fakeInventoryRepo) GetStock(productID uint) (int, bool, error) {
	qty, ok := f.stock[productID]
	return qty, ok, nil
}

func (f *fakeInventoryRepo) AddStock(tx *gorm.DB, productID uint, delta int, restocked time.Time) (*model.Inventory, error) {
	f.stock[productID] += delta
	return &model.Inventory{ProductID: productID, Quantity: f.stock[productID], LastRestocked: restocked}, nil
}

func (f *fakeInventoryRepo) DecrementStock(tx *gorm.DB, productID uint, delta int) error {
	if f.stock[productID] < delta {
		return repository.ErrStockConflict
	}
	f.stock[productID] -= delta
	return nil
}

type fakeSaleRepo struct{}

func (f *fakeSaleRepo) Create(tx *gorm.DB, sale *model.Sale) error         { return nil }
func (f *fakeSaleRepo) CreateItem(tx *gorm.DB, item *model.SaleItem) error { return nil }
func (f *fakeSaleRepo) FindByID(id uint) (*model.Sale, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeSaleRepo) FindByDateRange(from, to *time.Time) ([]repository.SaleReportRow, error) {
	return nil, nil
}
func (f *fakeSaleRepo) GetSummary(from, to *time.Time) (*repository.SalesSummary, error) {
	return nil, nil
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newBuilderFixture() (SaleService, *fakeProductRepo, *fakeInventoryRepo) {
	products := &fakeProductRepo{products: map[uint]model.Product{
		1: {ProductID: 1, ProductName: "Coffee Beans", Price: money("5.00")},
		2: {ProductID: 2, ProductName: "Filter Paper", Price: money("2.50")},
	}}
	inventory := &fakeInventoryRepo{stock: map[uint]int{1: 10, 2: 4}}
	svc := NewSaleService(products, inventory, &fakeSaleRepo{}, nil, nil, nil)
	return svc, products, inventory
}

func TestAddLineItemComputesRunningTotal(t *testing.T) {
	svc, _, _ := newBuilderFixture()
	sess := svc.CreateSession()

	view, err := svc.AddLineItem(sess.SessionID, 1, 3)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.True(t, view.Total.Equal(money("15.00")), "total = %s", view.Total)

	view, err = svc.AddLineItem(sess.SessionID, 2, 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	require.True(t, view.Total.Equal(money("20.00")), "total = %s", view.Total)
	require.True(t, view.Items[1].LineTotal.Equal(money("5.00")))
}

func TestAddLineItemRejectsNonPositiveQuantity(t *testing.T) {
	svc, _, _ := newBuilderFixture()
	sess := svc.CreateSession()

	for _, qty := range []int{0, -1} {
		_, err := svc.AddLineItem(sess.SessionID, 1, qty)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	}

	view, err := svc.GetSession(sess.SessionID)
	require.NoError(t, err)
	require.Empty(t, view.Items)
	require.True(t, view.Total.IsZero())
}

func TestAddLineItemRejectsUnknownProduct(t *testing.T) {
	svc, _, _ := newBuilderFixture()
	sess := svc.CreateSession()

	_, err := svc.AddLineItem(sess.SessionID, 99, 1)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestAddLineItemRequiresInventoryRecord(t *testing.T) {
	svc, products, inventory := newBuilderFixture()
	products.products[3] = model.Product{ProductID: 3, ProductName: "Unstocked", Price: money("1.00")}
	delete(inventory.stock, 3)

	sess := svc.CreateSession()
	_, err := svc.AddLineItem(sess.SessionID, 3, 1)
	require.ErrorIs(t, err, ErrNoInventory)
}

func TestAddLineItemRejectsQuantityAboveStock(t *testing.T) {
	svc, _, _ := newBuilderFixture()
	sess := svc.CreateSession()

	_, err := svc.AddLineItem(sess.SessionID, 2, 5)
	require.ErrorIs(t, err, ErrInsufficientStock)

	view, err := svc.GetSession(sess.SessionID)
	require.NoError(t, err)
	require.Empty(t, view.Items)
}

func TestAddLineItemReadsStockAtCallTime(t *testing.T) {
	svc, _, inventory := newBuilderFixture()
	sess := svc.CreateSession()

	inventory.stock[1] = 2
	_, err := svc.AddLineItem(sess.SessionID, 1, 5)
	require.ErrorIs(t, err, ErrInsufficientStock)

	inventory.stock[1] = 10
	_, err = svc.AddLineItem(sess.SessionID, 1, 5)
	require.NoError(t, err)
}

func TestAddLineItemCapturesPriceAtAddTime(t *testing.T) {
	svc, products, _ := newBuilderFixture()
	sess := svc.CreateSession()

	_, err := svc.AddLineItem(sess.SessionID, 1, 3)
	require.NoError(t, err)

	// A later catalog price change must not touch lines already added.
	p := products.products[1]
	p.Price = money("9.99")
	products.products[1] = p

	view, err := svc.GetSession(sess.SessionID)
	require.NoError(t, err)
	require.True(t, view.Items[0].UnitPrice.Equal(money("5.00")))
	require.True(t, view.Total.Equal(money("15.00")))

	// New lines pick up the new price.
	view, err = svc.AddLineItem(sess.SessionID, 1, 1)
	require.NoError(t, err)
	require.True(t, view.Items[1].UnitPrice.Equal(money("9.99")))
	require.True(t, view.Total.Equal(money("24.99")))
}

// Two lines for the same product may together exceed stock before commit:
// each add checks the raw inventory quantity, not what the session has
// already claimed. The conditional decrement at commit catches the overdraw.
func TestAddLineItemChecksRawStockPerCall(t *testing.T) {
	svc, _, _ := newBuilderFixture()
	sess := svc.CreateSession()

	_, err := svc.AddLineItem(sess.SessionID, 1, 7)
	require.NoError(t, err)

	view, err := svc.AddLineItem(sess.SessionID, 1, 7)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	require.True(t, view.Total.Equal(money("70.00")))
}

func TestRemoveLineItemRecomputesTotal(t *testing.T) {
	svc, _, _ := newBuilderFixture()
	sess := svc.CreateSession()

	_, err := svc.AddLineItem(sess.SessionID, 1, 3)
	require.NoError(t, err)
	_, err = svc.AddLineItem(sess.SessionID, 2, 2)
	require.NoError(t, err)

	view, err := svc.RemoveLineItem(sess.SessionID, 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.True(t, view.Total.Equal(money("5.00")))

	_, err = svc.RemoveLineItem(sess.SessionID, 5)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestResetSessionDiscardsItems(t *testing.T) {
	svc, _, _ := newBuilderFixture()
	sess := svc.CreateSession()

	_, err := svc.AddLineItem(sess.SessionID, 1, 3)
	require.NoError(t, err)

	require.NoError(t, svc.ResetSession(sess.SessionID))

	_, err = svc.GetSession(sess.SessionID)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCommitRejectsEmptySale(t *testing.T) {
	svc, _, _ := newBuilderFixture()
	sess := svc.CreateSession()

	_, err := svc.Commit(sess.SessionID, 3, 1)
	require.ErrorIs(t, err, ErrEmptySale)
}

func TestCommitRequiresCustomerAndSeller(t *testing.T) {
	svc, _, _ := newBuilderFixture()
	sess := svc.CreateSession()

	_, err := svc.AddLineItem(sess.SessionID, 1, 2)
	require.NoError(t, err)

	_, err = svc.Commit(sess.SessionID, 0, 1)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.Commit(sess.SessionID, 3, 0)
	require.ErrorAs(t, err, &ve)

	// Failed validation leaves the session intact.
	view, err := svc.GetSession(sess.SessionID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
}

func TestUnknownSessionIsReported(t *testing.T) {
	svc, _, _ := newBuilderFixture()
	bogus := uuid.New()

	_, err := svc.GetSession(bogus)
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.AddLineItem(bogus, 1, 1)
	require.ErrorIs(t, err, ErrSessionNotFound)

	// Unknown session wins over input validation, so every session
	// operation reports not-found the same way.
	_, err = svc.AddLineItem(bogus, 1, 0)
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Commit(bogus, 3, 1)
	require.ErrorIs(t, err, ErrSessionNotFound)
}
