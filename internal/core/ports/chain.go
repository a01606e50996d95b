package ports

import (
	"context"
	"math/big"
	"time"

	"tx-composer/internal/core/domain"
)

// ChainQuery is the read-only chain capability used to price and assemble
// transactions. Implementations do not retry.
type ChainQuery interface {
	// PaymentInfo estimates the partial fee of call submitted by address.
	PaymentInfo(ctx context.Context, call domain.Call, address string) (*big.Int, error)
	// MultisigDepositConstants reads multisig.depositBase and multisig.depositFactor.
	MultisigDepositConstants(ctx context.Context) (domain.MultisigDeposit, error)
	// CreateTransactionMetadata returns one bundle per address, in order.
	CreateTransactionMetadata(ctx context.Context, addresses []string) ([]domain.TxMetadata, error)
}

// ConstantsCache caches chain constants between sessions.
type ConstantsCache interface {
	// GetMultisigDeposit returns nil, nil on a cache miss.
	GetMultisigDeposit(ctx context.Context, chainID string) (*domain.MultisigDeposit, error)
	SetMultisigDeposit(ctx context.Context, chainID string, deposit domain.MultisigDeposit, ttl time.Duration) error
}
