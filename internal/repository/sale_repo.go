package repository

import (
	"time"

	"go-store-pos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	CreateItem(tx *gorm.DB, item *model.SaleItem) error
	FindByID(id uint) (*model.Sale, error)
	FindByDateRange(from, to *time.Time) ([]SaleReportRow, error)
	GetSummary(from, to *time.Time) (*SalesSummary, error)
}

// SaleReportRow is one line of the sales report, with the party names joined
// in.
type SaleReportRow struct {
	SaleID       uint            `json:"sale_id"`
	SaleDate     time.Time       `json:"sale_date"`
	CustomerName string          `json:"customer_name"`
	SellerName   string          `json:"seller_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// SalesSummary aggregates sale count and revenue over a period.
type SalesSummary struct {
	SaleCount    int64           `json:"sale_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create inserts the sale header inside the caller's transaction. The new
// sale_id is written back to the struct.
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) CreateItem(tx *gorm.DB, item *model.SaleItem) error {
	return tx.Create(item).Error
}

func (r *saleRepo) FindByID(id uint) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Customer").
		Preload("Seller").
		First(&sale, "sale_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) FindByDateRange(from, to *time.Time) ([]SaleReportRow, error) {
	query := r.db.Model(&model.Sale{}).
		Select(`sales.sale_id, sales.sale_date, COALESCE(c.customer_name, '') AS customer_name,
			COALESCE(s.seller_name, '') AS seller_name, sales.total_amount`).
		Joins("LEFT JOIN customers c ON sales.customer_id = c.customer_id").
		Joins("LEFT JOIN sellers s ON sales.seller_id = s.seller_id")

	if from != nil {
		query = query.Where("sales.sale_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("sales.sale_date <= ?", *to)
	}

	var rows []SaleReportRow
	err := query.Order("sales.sale_date DESC").Scan(&rows).Error
	return rows, err
}

func (r *saleRepo) GetSummary(from, to *time.Time) (*SalesSummary, error) {
	query := r.db.Model(&model.Sale{})
	if from != nil {
		query = query.Where("sale_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("sale_date <= ?", *to)
	}

	var summary SalesSummary
	err := query.
		Select("COUNT(*) AS sale_count, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
