package chain

import (
	"context"
	"time"

	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/ports"

	"github.com/rs/zerolog"
)

// CachedQuery serves the multisig deposit constants from a cache and
// passes every other query through. Cache failures degrade to a chain read.
type CachedQuery struct {
	ports.ChainQuery

	cache   ports.ConstantsCache
	chainID string
	ttl     time.Duration
	log     zerolog.Logger
}

// NewCachedQuery wraps next with cache for chainID.
func NewCachedQuery(next ports.ChainQuery, cache ports.ConstantsCache, chainID string, ttl time.Duration, log zerolog.Logger) *CachedQuery {
	return &CachedQuery{
		ChainQuery: next,
		cache:      cache,
		chainID:    chainID,
		ttl:        ttl,
		log:        log,
	}
}

func (q *CachedQuery) MultisigDepositConstants(ctx context.Context) (domain.MultisigDeposit, error) {
	cached, err := q.cache.GetMultisigDeposit(ctx, q.chainID)
	if err != nil {
		q.log.Warn().Err(err).Str("chain_id", q.chainID).Msg("constants cache read failed")
	}
	if cached != nil {
		return *cached, nil
	}

	deposit, err := q.ChainQuery.MultisigDepositConstants(ctx)
	if err != nil {
		return domain.MultisigDeposit{}, err
	}

	if err := q.cache.SetMultisigDeposit(ctx, q.chainID, deposit, q.ttl); err != nil {
		q.log.Warn().Err(err).Str("chain_id", q.chainID).Msg("constants cache write failed")
	}
	return deposit, nil
}
