package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to group writes without depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is aborted. Otherwise, it's committed.
	// Repository calls made inside fn must use txCtx so they join the transaction.
	Execute(ctx context.Context, fn func(txCtx context.Context, repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides the repositories available inside a transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ProfileRepo() ProfileRepository
	RecipeRepo() RecipeRepository
}
