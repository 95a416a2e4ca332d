package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	Business    BusinessSvcFacade
	Account     ChartAccountSvcFacade
	Transaction TransactionSvcFacade
	FixedAsset  FixedAssetSvcFacade
	Inventory   InventorySvcFacade
	Payroll     PayrollSvcFacade
	Reporting   ReportingSvcFacade
	Tax         TaxSvcFacade
}
