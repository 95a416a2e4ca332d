package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	portsrepo "github.com/nairabooks/naira_books_app/internal/core/ports/repositories"
	portssvc "github.com/nairabooks/naira_books_app/internal/core/ports/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/nairabooks/naira_books_app/internal/utils/taxcalc"
	"github.com/shopspring/decimal"
)

// PayrollService manages contacts and computes PAYE from employee salary
// structures using the progressive bands.
type PayrollService struct {
	BaseService
	contactRepo     portsrepo.ContactRepository
	transactionRepo portsrepo.TransactionRepository
}

// NewPayrollService creates a new PayrollService.
func NewPayrollService(cr portsrepo.ContactRepository, tr portsrepo.TransactionRepository, authorizer portssvc.BusinessAuthorizerSvc) *PayrollService {
	return &PayrollService{
		BaseService:     BaseService{BusinessAuthorizer: authorizer},
		contactRepo:     cr,
		transactionRepo: tr,
	}
}

var _ portssvc.PayrollSvcFacade = (*PayrollService)(nil)

// CreateContact persists a new contact. Salary and relief figures are monthly.
func (s *PayrollService) CreateContact(ctx context.Context, businessID string, req dto.CreateContactRequest, userID string) (*domain.Contact, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	for _, amount := range []decimal.Decimal{
		req.BasicSalary, req.HousingAllowance, req.TransportAllowance, req.OtherAllowances,
		req.NHFContribution, req.PensionContribution, req.LifeAssurance, req.MortgageInterest, req.RentPaid,
	} {
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: salary and relief amounts must not be negative", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	contact := domain.Contact{
		ContactID:           uuid.NewString(),
		BusinessID:          businessID,
		Name:                req.Name,
		Email:               req.Email,
		Type:                req.Type,
		BasicSalary:         req.BasicSalary,
		HousingAllowance:    req.HousingAllowance,
		TransportAllowance:  req.TransportAllowance,
		OtherAllowances:     req.OtherAllowances,
		NHFContribution:     req.NHFContribution,
		PensionContribution: req.PensionContribution,
		LifeAssurance:       req.LifeAssurance,
		MortgageInterest:    req.MortgageInterest,
		RentPaid:            req.RentPaid,
		IsActive:            true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		s.LogError(ctx, err, "Failed to save contact", slog.String("business_id", businessID), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.LogInfo(ctx, "Contact created", slog.String("contact_id", contact.ContactID), slog.String("type", string(contact.Type)))
	return &contact, nil
}

// GetContactByID retrieves one contact.
func (s *PayrollService) GetContactByID(ctx context.Context, businessID string, contactID string, userID string) (*domain.Contact, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find contact", slog.String("contact_id", contactID))
		return nil, fmt.Errorf("failed to get contact %s: %w", contactID, err)
	}
	if contact.BusinessID != businessID {
		return nil, apperrors.ErrNotFound
	}
	return contact, nil
}

// ListContacts retrieves all contacts for a business.
func (s *PayrollService) ListContacts(ctx context.Context, businessID string, userID string) ([]domain.Contact, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	contacts, err := s.contactRepo.ListContacts(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contacts", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list contacts for business %s: %w", businessID, err)
	}
	if contacts == nil {
		return []domain.Contact{}, nil
	}
	return contacts, nil
}

// ListEmployees retrieves active EMPLOYEE contacts only.
func (s *PayrollService) ListEmployees(ctx context.Context, businessID string, userID string) ([]domain.Contact, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	employees, err := s.contactRepo.ListEmployees(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list employees for business %s: %w", businessID, err)
	}
	if employees == nil {
		return []domain.Contact{}, nil
	}
	return employees, nil
}

// EmployeePAYE computes PAYE for a single employee. Monthly figures are
// annualized, taxed through the bands once and divided back down so the
// progressive bands apply at annual scale.
func (s *PayrollService) EmployeePAYE(ctx context.Context, businessID string, contactID string, annual bool, userID string) (*domain.PAYEResult, error) {
	contact, err := s.GetContactByID(ctx, businessID, contactID, userID)
	if err != nil {
		return nil, err
	}
	if contact.Type != domain.ContactEmployee {
		return nil, fmt.Errorf("%w: contact %s is not an employee", apperrors.ErrValidation, contactID)
	}

	reliefs := reliefsFromContact(*contact)
	bands := taxcalc.DefaultPAYEBands()

	var result domain.PAYEResult
	if annual {
		annualGross := contact.GrossSalary().Mul(decimal.NewFromInt(12))
		result, err = taxcalc.ComputePAYE(annualGross, reliefs.Scale(decimal.NewFromInt(12)), bands)
	} else {
		result, err = taxcalc.ComputeMonthlyPAYE(contact.GrossSalary(), reliefs, bands)
	}
	if err != nil {
		s.LogError(ctx, err, "PAYE computation failed", slog.String("contact_id", contactID))
		return nil, fmt.Errorf("failed to compute PAYE for contact %s: %w", contactID, err)
	}

	return &result, nil
}

// PAYEReport aggregates PAYE across employees with salary transactions in the
// period. Each salary transaction represents one month's payment, so an
// employee's PAYE for the period is their monthly PAYE times the number of
// salary payments found.
func (s *PayrollService) PAYEReport(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.PAYEReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end precedes period start", apperrors.ErrValidation)
	}

	salaryTxns, err := s.transactionRepo.ListSalaryTransactions(ctx, businessID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salary transactions", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list salary transactions: %w", err)
	}

	months := make(map[string]int64)
	for _, txn := range salaryTxns {
		if txn.ContactID == "" {
			continue
		}
		months[txn.ContactID]++
	}

	report := &domain.PAYEReport{
		Lines:     []domain.PAYEEmployeeLine{},
		TotalPAYE: decimal.Zero,
	}
	bands := taxcalc.DefaultPAYEBands()

	for contactID, count := range months {
		contact, err := s.contactRepo.FindContactByID(ctx, contactID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			s.LogError(ctx, err, "Failed to load employee for PAYE report", slog.String("contact_id", contactID))
			return nil, fmt.Errorf("failed to load employee %s: %w", contactID, err)
		}
		if contact.Type != domain.ContactEmployee {
			continue
		}

		monthly, err := taxcalc.ComputeMonthlyPAYE(contact.GrossSalary(), reliefsFromContact(*contact), bands)
		if err != nil {
			s.LogError(ctx, err, "PAYE computation failed in report", slog.String("contact_id", contactID))
			return nil, fmt.Errorf("failed to compute PAYE for employee %s: %w", contactID, err)
		}

		factor := decimal.NewFromInt(count)
		line := domain.PAYEEmployeeLine{
			ContactID:   contact.ContactID,
			ContactName: contact.Name,
			GrossSalary: monthly.GrossIncome.Mul(factor).Round(2),
			TotalRelief: monthly.TotalRelief.Mul(factor).Round(2),
			PAYE:        monthly.PAYE.Mul(factor).Round(2),
		}
		report.Lines = append(report.Lines, line)
		report.TotalPAYE = report.TotalPAYE.Add(line.PAYE)
	}

	report.TotalPAYE = report.TotalPAYE.Round(2)
	s.LogDebug(ctx, "PAYE report built", slog.String("business_id", businessID), slog.Int("employees", len(report.Lines)))
	return report, nil
}

// reliefsFromContact maps a contact's statutory deductions onto the relief
// inputs of the band calculator.
func reliefsFromContact(c domain.Contact) taxcalc.Reliefs {
	return taxcalc.Reliefs{
		NHF:              c.NHFContribution,
		Pension:          c.PensionContribution,
		LifeAssurance:    c.LifeAssurance,
		MortgageInterest: c.MortgageInterest,
		RentPaid:         c.RentPaid,
	}
}
