package chain

import (
	"context"
	"math/big"
	"time"

	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/ports"
)

// Observer receives the outcome of every chain query.
type Observer interface {
	ObserveChainQuery(operation string, took time.Duration, err error)
}

// MeteredQuery reports latency and result of each query to an Observer.
type MeteredQuery struct {
	next ports.ChainQuery
	obs  Observer
}

// NewMeteredQuery wraps next.
func NewMeteredQuery(next ports.ChainQuery, obs Observer) *MeteredQuery {
	return &MeteredQuery{next: next, obs: obs}
}

func (q *MeteredQuery) PaymentInfo(ctx context.Context, call domain.Call, address string) (*big.Int, error) {
	start := time.Now()
	fee, err := q.next.PaymentInfo(ctx, call, address)
	q.obs.ObserveChainQuery("payment_info", time.Since(start), err)
	return fee, err
}

func (q *MeteredQuery) MultisigDepositConstants(ctx context.Context) (domain.MultisigDeposit, error) {
	start := time.Now()
	deposit, err := q.next.MultisigDepositConstants(ctx)
	q.obs.ObserveChainQuery("multisig_deposit", time.Since(start), err)
	return deposit, err
}

func (q *MeteredQuery) CreateTransactionMetadata(ctx context.Context, addresses []string) ([]domain.TxMetadata, error) {
	start := time.Now()
	out, err := q.next.CreateTransactionMetadata(ctx, addresses)
	q.obs.ObserveChainQuery("tx_metadata", time.Since(start), err)
	return out, err
}
