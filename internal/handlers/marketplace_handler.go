package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/markabahub/backend/internal/models"
	"github.com/markabahub/backend/internal/repositories"
)

// MarketplaceHandler handles marketplace listing HTTP requests
type MarketplaceHandler struct {
	marketplaceRepository repositories.MarketplaceRepository
}

// NewMarketplaceHandler creates a new MarketplaceHandler
func NewMarketplaceHandler(marketplaceRepo repositories.MarketplaceRepository) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceRepository: marketplaceRepo}
}

// RegisterMarketplaceRoutes registers marketplace-related routes
func (h *MarketplaceHandler) RegisterMarketplaceRoutes(g *echo.Group) {
	g.POST("/marketplace", h.CreateItem)
	g.GET("/marketplace", h.ListItems)
	g.GET("/marketplace/user/:userId", h.GetItemsByUser)
	g.GET("/marketplace/:id", h.GetItem)
	g.PUT("/marketplace/:id", h.UpdateItem)
	g.DELETE("/marketplace/:id", h.DeleteItem)
}

// CreateItem creates a listing owned by the caller
func (h *MarketplaceHandler) CreateItem(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item := &models.MarketplaceItem{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
		Location:    req.Location,
		Condition:   req.Condition,
		Status:      models.ItemStatusAvailable,
	}
	if item.Condition == "" {
		item.Condition = "used"
	}

	if err := h.marketplaceRepository.CreateItem(item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": item})
}

// ListItems returns available listings matching the query filters
func (h *MarketplaceHandler) ListItems(c echo.Context) error {
	filter := models.ItemFilter{
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
	}
	if v := c.QueryParam("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	items, total, err := h.marketplaceRepository.ListItems(filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	limit := filter.Limit
	if limit < 1 || limit > 50 {
		limit = 10
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"items":       items,
		"total":       total,
		"currentPage": page,
		"totalPages":  (total + int64(limit) - 1) / int64(limit),
	})
}

// GetItem returns a single listing
func (h *MarketplaceHandler) GetItem(c echo.Context) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	item, err := h.marketplaceRepository.GetItemByID(id)
	if err != nil {
		return repoError(err, "Item not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": item})
}

// GetItemsByUser returns all listings of an owner, any status
func (h *MarketplaceHandler) GetItemsByUser(c echo.Context) error {
	userID, err := paramUint(c, "userId")
	if err != nil {
		return err
	}
	items, err := h.marketplaceRepository.GetItemsByUser(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

// UpdateItem updates a listing; only the owner may update
func (h *MarketplaceHandler) UpdateItem(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	item, err := h.marketplaceRepository.GetItemByID(id)
	if err != nil {
		return repoError(err, "Item not found")
	}
	if item.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to update this item")
	}

	var req models.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Images != nil {
		item.Images = req.Images
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Condition != "" {
		item.Condition = req.Condition
	}
	if req.Status != "" {
		item.Status = req.Status
	}

	if err := h.marketplaceRepository.UpdateItem(item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": item})
}

// DeleteItem removes a listing; only the owner may delete
func (h *MarketplaceHandler) DeleteItem(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}

	item, err := h.marketplaceRepository.GetItemByID(id)
	if err != nil {
		return repoError(err, "Item not found")
	}
	if item.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to delete this item")
	}

	if err := h.marketplaceRepository.DeleteItem(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
