package service

import (
	"errors"
	"time"

	"go-store-pos/internal/model"
	"go-store-pos/internal/repository"
	"go-store-pos/internal/ws"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InventoryService interface {
	Restock(productID uint, quantity int) (*model.Inventory, error)
	GetAllInventory() ([]model.Inventory, error)
}

type inventoryService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	db            *gorm.DB
	wsHub         *ws.Hub
	log           *zap.Logger
}

func NewInventoryService(pRepo repository.ProductRepository, iRepo repository.InventoryRepository, db *gorm.DB, hub *ws.Hub, log *zap.Logger) InventoryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &inventoryService{
		productRepo:   pRepo,
		inventoryRepo: iRepo,
		db:            db,
		wsHub:         hub,
		log:           log,
	}
}

// Restock adds quantity to a product's stock, creating the inventory record
// on first restock and stamping last_restocked with the current date.
func (s *inventoryService) Restock(productID uint, quantity int) (*model.Inventory, error) {
	if productID == 0 {
		return nil, invalid(nil, "product is a required field")
	}
	if quantity <= 0 {
		return nil, invalid(nil, "quantity must be a positive number")
	}

	product, err := s.productRepo.FindByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, invalid(nil, "selected product not found")
	}
	if err != nil {
		return nil, &StoreError{Op: "lookup product", Err: err}
	}

	var record *model.Inventory
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		record, txErr = s.inventoryRepo.AddStock(tx, productID, quantity, today())
		return txErr
	})
	if err != nil {
		return nil, &StoreError{Op: "restock", Err: err}
	}

	s.log.Info("inventory restocked",
		zap.Uint("product_id", productID),
		zap.Int("added", quantity),
		zap.Int("new_quantity", record.Quantity))

	if s.wsHub != nil {
		s.wsHub.BroadcastStockUpdate("restock", map[string]interface{}{
			"product_id":   productID,
			"product_name": product.ProductName,
			"quantity":     record.Quantity,
		})
	}

	return record, nil
}

func (s *inventoryService) GetAllInventory() ([]model.Inventory, error) {
	records, err := s.inventoryRepo.FindAll()
	if err != nil {
		return nil, &StoreError{Op: "list inventory", Err: err}
	}
	return records, nil
}

// today truncates now to a calendar date, matching the DATE column.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
