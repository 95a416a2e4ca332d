package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	portssvc "github.com/nairabooks/naira_books_app/internal/core/ports/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/nairabooks/naira_books_app/internal/middleware"
)

// businessHandler handles HTTP requests for businesses and their tax settings.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

func newBusinessHandler(bs portssvc.BusinessSvcFacade) *businessHandler {
	return &businessHandler{businessService: bs}
}

// registerBusinessRoutes registers routes for business and settings management.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade) {
	h := newBusinessHandler(businessService)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("/:businessID", h.getBusiness)
		businesses.GET("/:businessID/settings", h.getSettings)
		businesses.PUT("/:businessID/settings", h.updateSettings)
		businesses.POST("/:businessID/carry-forwards", h.commitCarryForwards)
	}
}

// createBusiness godoc
// @Summary Create a new business
// @Description Creates a business, seeds its tax settings with the standard rates and makes the caller the owner.
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create business")
		return
	}

	logger.Info("Business created", slog.String("business_id", business.BusinessID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// getBusiness godoc
// @Summary Get a business by ID
// @Tags businesses
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	business, err := h.businessService.GetBusinessByID(c.Request.Context(), businessID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve business")
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// getSettings godoc
// @Summary Get business tax settings
// @Tags businesses
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} domain.BusinessSettings
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/settings [get]
func (h *businessHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settings, err := h.businessService.GetSettings(c.Request.Context(), businessID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// updateSettings godoc
// @Summary Update business tax settings
// @Description Applies the provided settings changes. Owner role required.
// @Tags businesses
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param settings body dto.UpdateSettingsRequest true "Settings changes"
// @Success 200 {object} domain.BusinessSettings
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/settings [put]
func (h *businessHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settings, err := h.businessService.UpdateSettings(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update settings")
		return
	}

	logger.Info("Settings updated", slog.String("business_id", businessID))
	c.JSON(http.StatusOK, settings)
}

// commitCarryForwards godoc
// @Summary Commit year-end carry-forward balances
// @Description Persists the carry-forward balances from an accepted year-end tax computation. Owner role required.
// @Tags businesses
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param carryForwards body domain.CarryForwards true "Carry-forward balances"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/carry-forwards [post]
func (h *businessHandler) commitCarryForwards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var cf domain.CarryForwards
	if err := c.ShouldBindJSON(&cf); err != nil {
		logger.Warn("Failed to bind JSON for CommitCarryForwards", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.businessService.CommitCarryForwards(c.Request.Context(), businessID, cf, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to commit carry forwards")
		return
	}

	logger.Info("Carry forwards committed", slog.String("business_id", businessID))
	c.Status(http.StatusNoContent)
}
