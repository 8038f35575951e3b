package repository

import "context"

// TransactionManager defines the interface for managing storage transactions.
// This allows the use case layer to handle transactions without depending on a specific driver like GORM.
type TransactionManager interface {
	// Execute runs fn within a transaction.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations obtained from the factory use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewPrincipalRepository() PrincipalRepository
	NewAuthAccountRepository() AuthAccountRepository
	NewSessionRepository() SessionRepository
	NewRBACRepository() RBACRepository
}
