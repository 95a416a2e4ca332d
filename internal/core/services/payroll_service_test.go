package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/core/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	mockContactRepo *MockContactRepository
	mockTxnRepo     *MockTransactionRepository
	mockAuthorizer  *MockBusinessAuthorizer
	service         *services.PayrollService

	businessID string
	userID     string
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockContactRepo = new(MockContactRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAuthorizer = new(MockBusinessAuthorizer)
	suite.service = services.NewPayrollService(suite.mockContactRepo, suite.mockTxnRepo, suite.mockAuthorizer)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.businessID, mock.Anything).Return(nil)
}

// employee earns 100,000 a month (80k basic, 15k housing, 5k transport) with
// 8,000 pension and 2,500 NHF deducted monthly.
func (suite *PayrollServiceTestSuite) employee() *domain.Contact {
	return &domain.Contact{
		ContactID:           uuid.NewString(),
		BusinessID:          suite.businessID,
		Name:                "Adaeze Okafor",
		Type:                domain.ContactEmployee,
		BasicSalary:         decimal.NewFromInt(80000),
		HousingAllowance:    decimal.NewFromInt(15000),
		TransportAllowance:  decimal.NewFromInt(5000),
		PensionContribution: decimal.NewFromInt(8000),
		NHFContribution:     decimal.NewFromInt(2500),
		IsActive:            true,
	}
}

func (suite *PayrollServiceTestSuite) TestCreateContact_RejectsNegativeAmounts() {
	ctx := context.Background()

	req := dto.CreateContactRequest{
		Name:        "Bad Figures Ltd",
		Type:        domain.ContactEmployee,
		BasicSalary: decimal.NewFromInt(-50000),
	}
	_, err := suite.service.CreateContact(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockContactRepo.AssertNotCalled(suite.T(), "SaveContact", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestEmployeePAYE_Monthly() {
	ctx := context.Background()
	employee := suite.employee()
	suite.mockContactRepo.On("FindContactByID", ctx, employee.ContactID).Return(employee, nil).Once()

	result, err := suite.service.EmployeePAYE(ctx, suite.businessID, employee.ContactID, false, suite.userID)

	suite.Require().NoError(err)
	// Annualized: 1,200,000 gross less 126,000 reliefs leaves 1,074,000 taxable.
	// Bands: 300k at 7% + 300k at 11% + 474k at 15% = 125,100 a year.
	suite.True(result.GrossIncome.Equal(decimal.NewFromInt(100000)))
	suite.True(result.TotalRelief.Equal(decimal.NewFromInt(10500)))
	suite.True(result.PAYE.Equal(decimal.NewFromInt(10425)), "got %s", result.PAYE)
}

func (suite *PayrollServiceTestSuite) TestEmployeePAYE_Annual() {
	ctx := context.Background()
	employee := suite.employee()
	suite.mockContactRepo.On("FindContactByID", ctx, employee.ContactID).Return(employee, nil).Once()

	result, err := suite.service.EmployeePAYE(ctx, suite.businessID, employee.ContactID, true, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.GrossIncome.Equal(decimal.NewFromInt(1200000)))
	suite.True(result.TotalRelief.Equal(decimal.NewFromInt(126000)))
	suite.True(result.PAYE.Equal(decimal.NewFromInt(125100)))
	suite.Len(result.Bands, 3)
}

func (suite *PayrollServiceTestSuite) TestEmployeePAYE_RejectsNonEmployee() {
	ctx := context.Background()
	supplier := suite.employee()
	supplier.Type = domain.ContactSupplier
	suite.mockContactRepo.On("FindContactByID", ctx, supplier.ContactID).Return(supplier, nil).Once()

	_, err := suite.service.EmployeePAYE(ctx, suite.businessID, supplier.ContactID, false, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestPAYEReport_MultipliesByPaymentsFound() {
	ctx := context.Background()
	employee := suite.employee()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	salaryTxn := func(month time.Month) domain.Transaction {
		return domain.Transaction{
			TransactionID: uuid.NewString(),
			BusinessID:    suite.businessID,
			ContactID:     employee.ContactID,
			Type:          domain.Salary,
			Date:          time.Date(2024, month, 28, 0, 0, 0, 0, time.UTC),
			Amount:        decimal.NewFromInt(100000),
			IsSalary:      true,
		}
	}
	suite.mockTxnRepo.On("ListSalaryTransactions", ctx, suite.businessID, from, to).Return([]domain.Transaction{
		salaryTxn(time.January), salaryTxn(time.February), salaryTxn(time.March),
	}, nil).Once()
	suite.mockContactRepo.On("FindContactByID", ctx, employee.ContactID).Return(employee, nil).Once()

	report, err := suite.service.PAYEReport(ctx, suite.businessID, from, to, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(report.Lines, 1)
	line := report.Lines[0]
	suite.Equal(employee.ContactID, line.ContactID)
	suite.True(line.GrossSalary.Equal(decimal.NewFromInt(300000)))
	suite.True(line.TotalRelief.Equal(decimal.NewFromInt(31500)))
	suite.True(line.PAYE.Equal(decimal.NewFromInt(31275)))
	suite.True(report.TotalPAYE.Equal(decimal.NewFromInt(31275)))
}

func (suite *PayrollServiceTestSuite) TestPAYEReport_SkipsVanishedContacts() {
	ctx := context.Background()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	goneContactID := uuid.NewString()

	suite.mockTxnRepo.On("ListSalaryTransactions", ctx, suite.businessID, from, to).Return([]domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			BusinessID:    suite.businessID,
			ContactID:     goneContactID,
			Type:          domain.Salary,
			Date:          time.Date(2024, 5, 28, 0, 0, 0, 0, time.UTC),
			Amount:        decimal.NewFromInt(100000),
			IsSalary:      true,
		},
	}, nil).Once()
	suite.mockContactRepo.On("FindContactByID", ctx, goneContactID).Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.PAYEReport(ctx, suite.businessID, from, to, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(report.Lines)
	suite.True(report.TotalPAYE.IsZero())
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
