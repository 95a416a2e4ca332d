package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nairabooks/naira_books_app/internal/core/ports/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/nairabooks/naira_books_app/internal/middleware"
)

// inventoryHandler handles HTTP requests for inventory items and
// weighted-average cost movements.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// registerInventoryRoutes registers inventory routes on a
// business-scoped group.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	items := rg.Group("/inventory-items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:itemID", h.getItem)
		items.POST("/:itemID/opening-balance", h.setOpeningBalance)
		items.POST("/:itemID/purchases", h.recordPurchase)
		items.POST("/:itemID/sales", h.recordSale)
		items.GET("/:itemID/movements", h.listMovements)
	}
}

// createItem godoc
// @Summary Create an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param item body dto.CreateInventoryItemRequest true "Item details"
// @Success 201 {object} domain.InventoryItem
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/inventory-items [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create inventory item")
		return
	}

	logger.Info("Inventory item created", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, item)
}

// getItem godoc
// @Summary Get an inventory item by ID
// @Tags inventory
// @Produce json
// @Param businessID path string true "Business ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} domain.InventoryItem
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/inventory-items/{itemID} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	itemID := c.Param("itemID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.inventoryService.GetItemByID(c.Request.Context(), businessID, itemID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve inventory item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// listItems godoc
// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.ListInventoryItemsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/inventory-items [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), businessID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list inventory items")
		return
	}

	c.JSON(http.StatusOK, dto.ListInventoryItemsResponse{Items: items})
}

// setOpeningBalance godoc
// @Summary Set an item's opening balance
// @Description Seeds the item's initial quantity and unit cost. Only allowed before any other movement exists.
// @Tags inventory
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param itemID path string true "Item ID"
// @Param balance body dto.OpeningBalanceRequest true "Opening balance"
// @Success 200 {object} domain.InventoryItem
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/inventory-items/{itemID}/opening-balance [post]
func (h *inventoryHandler) setOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	itemID := c.Param("itemID")

	var req dto.OpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetOpeningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.inventoryService.SetOpeningBalance(c.Request.Context(), businessID, itemID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to set opening balance")
		return
	}

	logger.Info("Opening balance set", slog.String("item_id", itemID))
	c.JSON(http.StatusOK, item)
}

// recordPurchase godoc
// @Summary Record an inventory purchase
// @Description Adds stock at the given unit cost and recomputes the weighted average cost.
// @Tags inventory
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param itemID path string true "Item ID"
// @Param purchase body dto.InventoryPurchaseRequest true "Purchase details"
// @Success 200 {object} domain.InventoryItem
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/inventory-items/{itemID}/purchases [post]
func (h *inventoryHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	itemID := c.Param("itemID")

	var req dto.InventoryPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.inventoryService.RecordPurchase(c.Request.Context(), businessID, itemID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record purchase")
		return
	}

	logger.Info("Inventory purchase recorded", slog.String("item_id", itemID))
	c.JSON(http.StatusOK, item)
}

// recordSale godoc
// @Summary Record an inventory sale
// @Description Books revenue at the sale price and cost of goods sold at the weighted average cost.
// @Tags inventory
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param itemID path string true "Item ID"
// @Param sale body dto.InventorySaleRequest true "Sale details"
// @Success 200 {object} domain.InventoryItem
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/inventory-items/{itemID}/sales [post]
func (h *inventoryHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	itemID := c.Param("itemID")

	var req dto.InventorySaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.inventoryService.RecordSale(c.Request.Context(), businessID, itemID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record sale")
		return
	}

	logger.Info("Inventory sale recorded", slog.String("item_id", itemID))
	c.JSON(http.StatusOK, item)
}

// listMovements godoc
// @Summary List an item's movement history
// @Tags inventory
// @Produce json
// @Param businessID path string true "Business ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/inventory-items/{itemID}/movements [get]
func (h *inventoryHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	itemID := c.Param("itemID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	movements, err := h.inventoryService.ListMovements(c.Request.Context(), businessID, itemID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list movements")
		return
	}

	c.JSON(http.StatusOK, dto.ListMovementsResponse{Movements: movements})
}
