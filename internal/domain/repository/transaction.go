package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Use cases receive it inside TransactionManager.Execute.
type RepositoryFactory interface {
	NewAddressRepository() AddressRepository
	NewOrderRepository() OrderRepository
}

// TransactionManager runs a unit of work inside one database transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction; the transaction commits when fn
	// returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
