package handler

import (
	"go-store-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

func parseSessionID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func (h *SaleHandler) CreateSession(c *fiber.Ctx) error {
	session := h.service.CreateSession()
	return c.Status(201).JSON(session)
}

func (h *SaleHandler) GetSession(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	session, err := h.service.GetSession(sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

type addItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

func (h *SaleHandler) AddItem(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	session, err := h.service.AddLineItem(sessionID, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

func (h *SaleHandler) RemoveItem(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item index"})
	}

	session, err := h.service.RemoveLineItem(sessionID, index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

func (h *SaleHandler) ResetSession(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	if err := h.service.ResetSession(sessionID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sale session discarded"})
}

type commitRequest struct {
	CustomerID uint `json:"customer_id"`
	SellerID   uint `json:"seller_id"`
}

func (h *SaleHandler) Commit(c *fiber.Ctx) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	var req commitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	saleID, err := h.service.Commit(sessionID, req.CustomerID, req.SellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sale processed successfully", "sale_id": saleID})
}

func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	saleID, err := c.ParamsInt("id")
	if err != nil || saleID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	sale, err := h.service.GetSale(uint(saleID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}
