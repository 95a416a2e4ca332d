package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/nairabooks/naira_books_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxChartAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	fixedAssetRepo := newPgxFixedAssetRepository(dbPool)
	inventoryRepo := newPgxInventoryRepository(dbPool)
	contactRepo := newPgxContactRepository(dbPool)
	businessRepo := newPgxBusinessRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		FixedAssetRepo:  fixedAssetRepo,
		InventoryRepo:   inventoryRepo,
		ContactRepo:     contactRepo,
		BusinessRepo:    businessRepo,
		UserRepo:        userRepo,
	}
}
