package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nairabooks/naira_books_app/internal/core/ports/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/nairabooks/naira_books_app/internal/middleware"
)

// contactHandler handles HTTP requests for contacts and per-employee
// PAYE computations.
type contactHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newContactHandler(ps portssvc.PayrollSvcFacade) *contactHandler {
	return &contactHandler{payrollService: ps}
}

// registerContactRoutes registers contact and employee routes on a
// business-scoped group.
func registerContactRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newContactHandler(payrollService)

	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.listContacts)
		contacts.GET("/:contactID", h.getContact)
		contacts.GET("/:contactID/paye", h.employeePAYE)
	}
	rg.GET("/employees", h.listEmployees)
}

// createContact godoc
// @Summary Create a contact
// @Description Creates a customer, supplier or employee. Salary and relief fields apply to employees only.
// @Tags contacts
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param contact body dto.CreateContactRequest true "Contact details"
// @Success 201 {object} domain.Contact
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/contacts [post]
func (h *contactHandler) createContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateContact", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contact, err := h.payrollService.CreateContact(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create contact")
		return
	}

	logger.Info("Contact created", slog.String("contact_id", contact.ContactID))
	c.JSON(http.StatusCreated, contact)
}

// getContact godoc
// @Summary Get a contact by ID
// @Tags contacts
// @Produce json
// @Param businessID path string true "Business ID"
// @Param contactID path string true "Contact ID"
// @Success 200 {object} domain.Contact
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/contacts/{contactID} [get]
func (h *contactHandler) getContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	contactID := c.Param("contactID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contact, err := h.payrollService.GetContactByID(c.Request.Context(), businessID, contactID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// listContacts godoc
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.ListContactsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contacts, err := h.payrollService.ListContacts(c.Request.Context(), businessID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list contacts")
		return
	}

	c.JSON(http.StatusOK, dto.ListContactsResponse{Contacts: contacts})
}

// listEmployees godoc
// @Summary List employee contacts
// @Tags contacts
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.ListContactsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/employees [get]
func (h *contactHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employees, err := h.payrollService.ListEmployees(c.Request.Context(), businessID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ListContactsResponse{Contacts: employees})
}

// employeePAYE godoc
// @Summary Compute PAYE for an employee
// @Description Computes the employee's PAYE from their salary structure. Monthly by default, annual when annual=true.
// @Tags contacts
// @Produce json
// @Param businessID path string true "Business ID"
// @Param contactID path string true "Contact ID"
// @Param annual query bool false "Return annual figures instead of monthly"
// @Success 200 {object} domain.PAYEResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID}/contacts/{contactID}/paye [get]
func (h *contactHandler) employeePAYE(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	contactID := c.Param("contactID")

	annual, err := strconv.ParseBool(c.DefaultQuery("annual", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid annual parameter, expected true or false"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.payrollService.EmployeePAYE(c.Request.Context(), businessID, contactID, annual, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute PAYE")
		return
	}

	c.JSON(http.StatusOK, result)
}
