package chain

import (
	"context"
	"math/big"

	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// BreakerQuery guards a ChainQuery with a circuit breaker. While open,
// calls fail fast with gobreaker.ErrOpenState.
type BreakerQuery struct {
	next ports.ChainQuery
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerQuery wraps next.
func NewBreakerQuery(next ports.ChainQuery, log zerolog.Logger) *BreakerQuery {
	return &BreakerQuery{next: next, cb: newCircuitBreaker("chain", log)}
}

func newCircuitBreaker(name string, log zerolog.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests > 20 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch {
			case to == gobreaker.StateOpen:
				log.Warn().Str("breaker", name).Msg("chain seems down, stop allowing requests")
			case from == gobreaker.StateOpen && to == gobreaker.StateHalfOpen:
				log.Info().Str("breaker", name).Msg("checking chain status")
			case from == gobreaker.StateHalfOpen && to == gobreaker.StateClosed:
				log.Info().Str("breaker", name).Msg("chain seems ok, restart allowing requests")
			}
		},
	})
}

// State returns the breaker state.
func (b *BreakerQuery) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerQuery) PaymentInfo(ctx context.Context, call domain.Call, address string) (*big.Int, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.PaymentInfo(ctx, call, address)
	})
	if err != nil {
		return nil, err
	}
	return res.(*big.Int), nil
}

func (b *BreakerQuery) MultisigDepositConstants(ctx context.Context) (domain.MultisigDeposit, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.MultisigDepositConstants(ctx)
	})
	if err != nil {
		return domain.MultisigDeposit{}, err
	}
	return res.(domain.MultisigDeposit), nil
}

func (b *BreakerQuery) CreateTransactionMetadata(ctx context.Context, addresses []string) ([]domain.TxMetadata, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.CreateTransactionMetadata(ctx, addresses)
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.TxMetadata), nil
}
