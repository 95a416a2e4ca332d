package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nairabooks/naira_books_app/internal/core/ports/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/nairabooks/naira_books_app/internal/middleware"
)

// reportsHandler handles HTTP requests for period reports and the
// year-end tax computations.
type reportsHandler struct {
	reportingService portssvc.ReportingSvcFacade
	payrollService   portssvc.PayrollSvcFacade
	taxService       portssvc.TaxSvcFacade
}

func newReportsHandler(rs portssvc.ReportingSvcFacade, ps portssvc.PayrollSvcFacade, ts portssvc.TaxSvcFacade) *reportsHandler {
	return &reportsHandler{reportingService: rs, payrollService: ps, taxService: ts}
}

// registerReportRoutes registers report routes on a business-scoped group.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, payrollService portssvc.PayrollSvcFacade, taxService portssvc.TaxSvcFacade) {
	h := newReportsHandler(reportingService, payrollService, taxService)

	reports := rg.Group("/reports")
	{
		reports.GET("/accounting-profit", h.accountingProfit)
		reports.GET("/vat", h.vatReport)
		reports.GET("/wht", h.whtReport)
		reports.GET("/paye", h.payeReport)
		reports.GET("/cit", h.citReport)
		reports.GET("/pit", h.pitReport)
	}
}

// bindPeriod binds the shared from/to query parameters, writing the
// error response itself when binding fails.
func bindPeriod(c *gin.Context, logger *slog.Logger) (dto.ReportPeriodParams, bool) {
	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind report period", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid period parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

// accountingProfit godoc
// @Summary Accounting profit report
// @Description Buckets the period's transactions into revenue, cost of sales and expenses and returns the resulting profit.
// @Tags reports
// @Produce json
// @Param businessID path string true "Business ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} domain.AccountingProfitReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/reports/accounting-profit [get]
func (h *reportsHandler) accountingProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	params, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.AccountingProfit(c.Request.Context(), businessID, params.From, params.To, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build accounting profit report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// vatReport godoc
// @Summary VAT report
// @Description Splits the period's VAT between output VAT on inflows and input VAT on outflows.
// @Tags reports
// @Produce json
// @Param businessID path string true "Business ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} domain.VATReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/reports/vat [get]
func (h *reportsHandler) vatReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	params, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.VATReport(c.Request.Context(), businessID, params.From, params.To, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build VAT report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// whtReport godoc
// @Summary WHT report
// @Description Splits the period's withholding tax between receivable credits and payable remittances.
// @Tags reports
// @Produce json
// @Param businessID path string true "Business ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} domain.WHTReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/reports/wht [get]
func (h *reportsHandler) whtReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	params, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.WHTReport(c.Request.Context(), businessID, params.From, params.To, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build WHT report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// payeReport godoc
// @Summary PAYE report
// @Description Aggregates PAYE across all employees with salary transactions in the period.
// @Tags reports
// @Produce json
// @Param businessID path string true "Business ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} domain.PAYEReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/reports/paye [get]
func (h *reportsHandler) payeReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	params, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.payrollService.PAYEReport(c.Request.Context(), businessID, params.From, params.To, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build PAYE report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// citReport godoc
// @Summary Companies income tax computation
// @Description Runs the year-end CIT computation. Only available to COMPANY businesses.
// @Tags reports
// @Produce json
// @Param businessID path string true "Business ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} domain.CITReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/reports/cit [get]
func (h *reportsHandler) citReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	params, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.taxService.CITReport(c.Request.Context(), businessID, params.From, params.To, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build CIT report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// pitReport godoc
// @Summary Personal income tax computation
// @Description Runs the year-end PIT computation. Only available to SOLE_PROPRIETOR businesses.
// @Tags reports
// @Produce json
// @Param businessID path string true "Business ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} domain.PITReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/reports/pit [get]
func (h *reportsHandler) pitReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	params, ok := bindPeriod(c, logger)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.taxService.PITReport(c.Request.Context(), businessID, params.From, params.To, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build PIT report")
		return
	}

	c.JSON(http.StatusOK, report)
}
