package repositories

// RepositoryProvider holds instances of all repositories, wired once at startup
// and handed to the service container.
type RepositoryProvider struct {
	AccountRepo     ChartAccountRepository
	TransactionRepo TransactionRepository
	FixedAssetRepo  FixedAssetRepository
	InventoryRepo   InventoryRepository
	ContactRepo     ContactRepository
	BusinessRepo    BusinessRepository
	UserRepo        UserRepository
}
