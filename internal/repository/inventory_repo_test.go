package repository

import (
	"os"
	"testing"
	"time"

	"go-store-pos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type InventoryRepoSuite struct {
	suite.Suite
	db   *gorm.DB
	repo InventoryRepository
}

func (s *InventoryRepoSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	require.NoError(s.T(), db.AutoMigrate(&model.Product{}, &model.Inventory{}))

	s.db = db
	s.repo = NewInventoryRepo(db)
}

func (s *InventoryRepoSuite) SetupTest() {
	s.db.Exec("DELETE FROM inventory")
	s.db.Exec("DELETE FROM products")
}

func (s *InventoryRepoSuite) TearDownSuite() {
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		sqlDB.Close()
	}
}

func (s *InventoryRepoSuite) seedProduct(name string) uint {
	product := &model.Product{ProductName: name, Price: decimal.RequireFromString("1.00")}
	require.NoError(s.T(), s.db.Create(product).Error)
	return product.ProductID
}

func (s *InventoryRepoSuite) TestAddStockCreatesThenAccumulates() {
	productID := s.seedProduct("Coffee Beans")
	day1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	// First restock creates the record.
	record, err := s.repo.AddStock(s.db, productID, 5, day1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, record.Quantity)

	// Later restocks are additive and move last_restocked forward.
	record, err = s.repo.AddStock(s.db, productID, 7, day2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12, record.Quantity)

	stored, err := s.repo.FindByProductID(productID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12, stored.Quantity)
	require.Equal(s.T(), day2.Format("2006-01-02"), stored.LastRestocked.Format("2006-01-02"))
}

func (s *InventoryRepoSuite) TestGetStockDistinguishesAbsentFromZero() {
	productID := s.seedProduct("Coffee Beans")

	_, exists, err := s.repo.GetStock(productID)
	require.NoError(s.T(), err)
	require.False(s.T(), exists)

	_, err = s.repo.AddStock(s.db, productID, 3, time.Now())
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.repo.DecrementStock(s.db, productID, 3))

	qty, exists, err := s.repo.GetStock(productID)
	require.NoError(s.T(), err)
	require.True(s.T(), exists)
	require.Zero(s.T(), qty)
}

func (s *InventoryRepoSuite) TestAddStockAppliesOnTopOfDecrements() {
	productID := s.seedProduct("Coffee Beans")

	_, err := s.repo.AddStock(s.db, productID, 5, time.Now())
	require.NoError(s.T(), err)

	// A committed sale lands between two restocks; the additive update must
	// build on the decremented value, not a stale read.
	require.NoError(s.T(), s.repo.DecrementStock(s.db, productID, 2))

	record, err := s.repo.AddStock(s.db, productID, 10, time.Now())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 13, record.Quantity)

	var stored int
	require.NoError(s.T(), s.db.Raw(
		"SELECT quantity FROM inventory WHERE product_id = ?", productID).Scan(&stored).Error)
	require.Equal(s.T(), 13, stored)
}

func (s *InventoryRepoSuite) TestDecrementStockRefusesOverdraw() {
	productID := s.seedProduct("Coffee Beans")
	_, err := s.repo.AddStock(s.db, productID, 4, time.Now())
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.repo.DecrementStock(s.db, productID, 3))

	err = s.repo.DecrementStock(s.db, productID, 2)
	require.ErrorIs(s.T(), err, ErrStockConflict)

	// The failed decrement changed nothing.
	qty, _, err := s.repo.GetStock(productID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, qty)
}

func TestInventoryRepoSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepoSuite))
}
