package services

import (
	portsrepo "github.com/nairabooks/naira_books_app/internal/core/ports/repositories"
	portssvc "github.com/nairabooks/naira_books_app/internal/core/ports/services"
	"github.com/nairabooks/naira_books_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Business service first since every other service authorizes through it
	businessSvc := NewBusinessService(repos.BusinessRepo)
	container.Business = businessSvc

	var authorizer portssvc.BusinessAuthorizerSvc = businessSvc

	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.Account = NewChartAccountService(repos.AccountRepo, authorizer)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.BusinessRepo, authorizer)
	container.FixedAsset = NewFixedAssetService(repos.FixedAssetRepo, repos.TransactionRepo, repos.BusinessRepo, authorizer)
	container.Inventory = NewInventoryService(repos.InventoryRepo, repos.TransactionRepo, authorizer)
	container.Payroll = NewPayrollService(repos.ContactRepo, repos.TransactionRepo, authorizer)
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.AccountRepo, repos.FixedAssetRepo, authorizer)
	container.Tax = NewTaxService(container.Reporting, repos.BusinessRepo, repos.FixedAssetRepo, authorizer)

	return container
}
