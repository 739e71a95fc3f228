package handler

import (
	"time"

	"go-store-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// parseDateRange reads optional from/to query params as YYYY-MM-DD. The "to"
// bound is pushed to end of day so the range is inclusive.
func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, nil, err
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	return from, to, nil
}

func (h *ReportHandler) GetSales(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Dates must use the YYYY-MM-DD format"})
	}

	rows, err := h.service.GetSales(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Dates must use the YYYY-MM-DD format"})
	}

	summary, err := h.service.GetSummary(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
