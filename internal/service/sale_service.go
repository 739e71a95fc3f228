package service

import (
	"errors"
	"sort"
	"sync"
	"time"

	"go-store-pos/internal/model"
	"go-store-pos/internal/repository"
	"go-store-pos/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SaleService interface {
	CreateSession() *SessionView
	GetSession(sessionID uuid.UUID) (*SessionView, error)
	AddLineItem(sessionID uuid.UUID, productID uint, quantity int) (*SessionView, error)
	RemoveLineItem(sessionID uuid.UUID, index int) (*SessionView, error)
	ResetSession(sessionID uuid.UUID) error
	Commit(sessionID uuid.UUID, customerID, sellerID uint) (uint, error)
	GetSale(saleID uint) (*model.Sale, error)
}

// SessionView is the API-facing snapshot of a sale-in-progress. The total is
// always derived from the stored line items, never carried incrementally.
type SessionView struct {
	SessionID uuid.UUID            `json:"session_id"`
	Items     []model.SaleLineItem `json:"items"`
	Total     decimal.Decimal      `json:"total"`
}

// saleSession is the explicit session object owning the accumulating line
// items for one sale-in-progress.
type saleSession struct {
	id        uuid.UUID
	items     []model.SaleLineItem
	createdAt time.Time
}

func (s *saleSession) total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal)
	}
	return total
}

func (s *saleSession) view() *SessionView {
	items := make([]model.SaleLineItem, len(s.items))
	copy(items, s.items)
	return &SessionView{
		SessionID: s.id,
		Items:     items,
		Total:     s.total(),
	}
}

type saleService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	saleRepo      repository.SaleRepository
	db            *gorm.DB
	wsHub         *ws.Hub
	log           *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*saleSession
}

func NewSaleService(pRepo repository.ProductRepository, iRepo repository.InventoryRepository, slRepo repository.SaleRepository, db *gorm.DB, hub *ws.Hub, log *zap.Logger) SaleService {
	if log == nil {
		log = zap.NewNop()
	}
	return &saleService{
		productRepo:   pRepo,
		inventoryRepo: iRepo,
		saleRepo:      slRepo,
		db:            db,
		wsHub:         hub,
		log:           log,
		sessions:      make(map[uuid.UUID]*saleSession),
	}
}

func (s *saleService) CreateSession() *SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &saleSession{
		id:        uuid.New(),
		createdAt: time.Now(),
	}
	s.sessions[sess.id] = sess
	return sess.view()
}

func (s *saleService) GetSession(sessionID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.view(), nil
}

// AddLineItem validates quantity against the stock read at call time, then
// appends a line capturing the product's current price. Validation failures
// leave the session untouched.
//
// The check deliberately uses the raw inventory quantity and ignores amounts
// already accumulated for the same product in this session, so two lines can
// together exceed stock before commit. The conditional decrement at commit is
// the backstop for that case.
func (s *saleService) AddLineItem(sessionID uuid.UUID, productID uint, quantity int) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
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

	stock, exists, err := s.inventoryRepo.GetStock(productID)
	if err != nil {
		return nil, &StoreError{Op: "lookup stock", Err: err}
	}
	if !exists {
		return nil, invalid(ErrNoInventory, "product not available in inventory")
	}
	if quantity > stock {
		return nil, invalid(ErrInsufficientStock, "not enough stock, only %d available", stock)
	}

	unitPrice := product.Price
	sess.items = append(sess.items, model.SaleLineItem{
		ProductID:   productID,
		ProductName: product.ProductName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	})

	return sess.view(), nil
}

func (s *saleService) RemoveLineItem(sessionID uuid.UUID, index int) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if index < 0 || index >= len(sess.items) {
		return nil, invalid(nil, "no such line item")
	}

	sess.items = append(sess.items[:index], sess.items[index+1:]...)
	return sess.view(), nil
}

func (s *saleService) ResetSession(sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// Commit persists the sale atomically: header, every line item, then one
// inventory decrement per distinct product. Any failure rolls the whole
// transaction back and leaves the session's line items in place for retry;
// success clears the session.
func (s *saleService) Commit(sessionID uuid.UUID, customerID, sellerID uint) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return 0, ErrSessionNotFound
	}
	if len(sess.items) == 0 {
		return 0, invalid(ErrEmptySale, "no items in the sale")
	}
	if customerID == 0 || sellerID == 0 {
		return 0, invalid(nil, "customer and seller are required fields")
	}

	sale := &model.Sale{
		CustomerID:  customerID,
		SellerID:    sellerID,
		SaleDate:    time.Now(),
		TotalAmount: sess.total(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.saleRepo.Create(tx, sale); err != nil {
			return err
		}

		for _, item := range sess.items {
			saleItem := &model.SaleItem{
				SaleID:    sale.SaleID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			}
			if err := s.saleRepo.CreateItem(tx, saleItem); err != nil {
				return err
			}
		}

		for _, dec := range decrementsByProduct(sess.items) {
			if err := s.inventoryRepo.DecrementStock(tx, dec.productID, dec.quantity); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.log.Warn("sale commit rolled back", zap.Error(err))
		return 0, &CommitError{Err: err}
	}

	delete(s.sessions, sessionID)

	s.log.Info("sale committed",
		zap.Uint("sale_id", sale.SaleID),
		zap.Int("items", len(sess.items)),
		zap.String("total", sale.TotalAmount.StringFixed(2)))

	if s.wsHub != nil {
		s.wsHub.BroadcastStockUpdate("sale_committed", map[string]interface{}{
			"sale_id": sale.SaleID,
			"total":   sale.TotalAmount.StringFixed(2),
		})
	}

	return sale.SaleID, nil
}

func (s *saleService) GetSale(saleID uint) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(saleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, &StoreError{Op: "lookup sale", Err: err}
	}
	return sale, nil
}

type productDecrement struct {
	productID uint
	quantity  int
}

// decrementsByProduct sums quantities per distinct product and returns them
// in ascending product order, so concurrent commits lock inventory rows in a
// stable order.
func decrementsByProduct(items []model.SaleLineItem) []productDecrement {
	byProduct := make(map[uint]int)
	for _, item := range items {
		byProduct[item.ProductID] += item.Quantity
	}

	decs := make([]productDecrement, 0, len(byProduct))
	for productID, qty := range byProduct {
		decs = append(decs, productDecrement{productID: productID, quantity: qty})
	}
	sort.Slice(decs, func(i, j int) bool { return decs[i].productID < decs[j].productID })
	return decs
}
