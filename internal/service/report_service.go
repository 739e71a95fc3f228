package service

import (
	"time"

	"go-store-pos/internal/repository"
)

type ReportService interface {
	GetSales(from, to *time.Time) ([]repository.SaleReportRow, error)
	GetSummary(from, to *time.Time) (*repository.SalesSummary, error)
}

type reportService struct {
	saleRepo repository.SaleRepository
}

func NewReportService(slRepo repository.SaleRepository) ReportService {
	return &reportService{saleRepo: slRepo}
}

func (s *reportService) GetSales(from, to *time.Time) ([]repository.SaleReportRow, error) {
	rows, err := s.saleRepo.FindByDateRange(from, to)
	if err != nil {
		return nil, &StoreError{Op: "list sales", Err: err}
	}
	return rows, nil
}

func (s *reportService) GetSummary(from, to *time.Time) (*repository.SalesSummary, error) {
	summary, err := s.saleRepo.GetSummary(from, to)
	if err != nil {
		return nil, &StoreError{Op: "sales summary", Err: err}
	}
	return summary, nil
}
