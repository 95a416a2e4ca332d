package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nairabooks/naira_books_app/internal/core/ports/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/nairabooks/naira_books_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// fixedAssetHandler handles HTTP requests for fixed assets, the
// depreciation run and disposals.
type fixedAssetHandler struct {
	fixedAssetService portssvc.FixedAssetSvcFacade
}

func newFixedAssetHandler(fas portssvc.FixedAssetSvcFacade) *fixedAssetHandler {
	return &fixedAssetHandler{fixedAssetService: fas}
}

// registerFixedAssetRoutes registers fixed asset routes on a
// business-scoped group.
func registerFixedAssetRoutes(rg *gin.RouterGroup, fixedAssetService portssvc.FixedAssetSvcFacade) {
	h := newFixedAssetHandler(fixedAssetService)

	assets := rg.Group("/fixed-assets")
	{
		assets.POST("", h.createFixedAsset)
		assets.GET("", h.listFixedAssets)
		assets.GET("/:assetID", h.getFixedAsset)
		assets.POST("/depreciation-run", h.runDepreciation)
		assets.POST("/:assetID/dispose", h.disposeFixedAsset)
	}
}

// createFixedAsset godoc
// @Summary Record a fixed asset purchase
// @Tags fixed-assets
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param asset body dto.CreateFixedAssetRequest true "Asset details"
// @Success 201 {object} domain.FixedAsset
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/fixed-assets [post]
func (h *fixedAssetHandler) createFixedAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFixedAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asset, err := h.fixedAssetService.CreateFixedAsset(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create fixed asset")
		return
	}

	logger.Info("Fixed asset created", slog.String("fixed_asset_id", asset.FixedAssetID))
	c.JSON(http.StatusCreated, asset)
}

// getFixedAsset godoc
// @Summary Get a fixed asset by ID
// @Tags fixed-assets
// @Produce json
// @Param businessID path string true "Business ID"
// @Param assetID path string true "Fixed asset ID"
// @Success 200 {object} domain.FixedAsset
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/fixed-assets/{assetID} [get]
func (h *fixedAssetHandler) getFixedAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	assetID := c.Param("assetID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asset, err := h.fixedAssetService.GetFixedAssetByID(c.Request.Context(), businessID, assetID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve fixed asset")
		return
	}

	c.JSON(http.StatusOK, asset)
}

// listFixedAssets godoc
// @Summary List fixed assets
// @Tags fixed-assets
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.ListFixedAssetsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/fixed-assets [get]
func (h *fixedAssetHandler) listFixedAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	assets, err := h.fixedAssetService.ListFixedAssets(c.Request.Context(), businessID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list fixed assets")
		return
	}

	c.JSON(http.StatusOK, dto.ListFixedAssetsResponse{FixedAssets: assets})
}

// runDepreciation godoc
// @Summary Run monthly depreciation
// @Description Charges one month of reducing-balance depreciation on every active asset and records a depreciation transaction per asset.
// @Tags fixed-assets
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.DepreciationRunResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/fixed-assets/depreciation-run [post]
func (h *fixedAssetHandler) runDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	lines, err := h.fixedAssetService.RunMonthlyDepreciation(c.Request.Context(), businessID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to run depreciation")
		return
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.MonthlyDepreciation)
	}

	logger.Info("Depreciation run completed",
		slog.String("business_id", businessID),
		slog.Int("assets", len(lines)))
	c.JSON(http.StatusOK, dto.DepreciationRunResponse{Lines: lines, Total: total})
}

// disposeFixedAsset godoc
// @Summary Dispose of a fixed asset
// @Description Settles the asset at the given proceeds and books the disposal profit or loss, or the chargeable gain or loss for CHARGEABLE assets.
// @Tags fixed-assets
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param assetID path string true "Fixed asset ID"
// @Param disposal body dto.DisposeFixedAssetRequest true "Disposal details"
// @Success 200 {object} domain.FixedAsset
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/fixed-assets/{assetID}/dispose [post]
func (h *fixedAssetHandler) disposeFixedAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	assetID := c.Param("assetID")

	var req dto.DisposeFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DisposeFixedAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asset, err := h.fixedAssetService.DisposeFixedAsset(c.Request.Context(), businessID, assetID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to dispose fixed asset")
		return
	}

	logger.Info("Fixed asset disposed", slog.String("fixed_asset_id", assetID))
	c.JSON(http.StatusOK, asset)
}
