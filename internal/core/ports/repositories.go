package ports

import (
	"context"

	"tx-composer/internal/core/domain"
)

// WalletRepository is the read side of the wallet directory.
type WalletRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Wallet, error)
	List(ctx context.Context) ([]domain.Wallet, error)
}

// AccountRepository is the read side of the account directory.
// Accounts without a chain id are chain-agnostic and always returned.
type AccountRepository interface {
	ListByWallet(ctx context.Context, walletID int64, chainID string) ([]domain.Account, error)
	ListByChain(ctx context.Context, chainID string) ([]domain.Account, error)
}

// OperatorRepository reads API operators.
type OperatorRepository interface {
	// GetByUsername returns nil, nil when no operator has that username.
	GetByUsername(ctx context.Context, username string) (*domain.Operator, error)
}
