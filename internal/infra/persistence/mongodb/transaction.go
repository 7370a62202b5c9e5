package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"recipebook/config"
	"recipebook/internal/domain/repository"
	"recipebook/internal/errors"
)

// mongoTransactionManager implements the domain's TransactionManager interface.
// Multi-document transactions need a replica set, so they are opt-in through
// mongo.transactions; without them fn runs directly against the database.
type mongoTransactionManager struct {
	db      *mongo.Database
	enabled bool
}

// mongoRepositoryFactory hands out repositories over the same database.
// Inside a transaction the session travels in txCtx, not in the repositories.
type mongoRepositoryFactory struct {
	db *mongo.Database
}

func (f *mongoRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.db)
}

func (f *mongoRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(f.db)
}

func (f *mongoRepositoryFactory) RecipeRepo() repository.RecipeRepository {
	return NewRecipeRepository(f.db)
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(db *mongo.Database, cfg *config.Config) repository.TransactionManager {
	return &mongoTransactionManager{
		db:      db,
		enabled: cfg.Mongo != nil && cfg.Mongo.Transactions,
	}
}

// Execute runs fn inside a session transaction when enabled.
// The driver retries fn on transient transaction errors, so fn must be safe to re-run.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(txCtx context.Context, repoFactory repository.RepositoryFactory) error) error {
	factory := &mongoRepositoryFactory{db: tm.db}

	if !tm.enabled {
		return fn(ctx, factory)
	}

	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx, factory)
	})

	return err
}
