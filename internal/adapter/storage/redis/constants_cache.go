package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"tx-composer/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ConstantsCache implements ports.ConstantsCache using Redis. Values are
// stored as decimal strings so planck amounts never lose precision.
type ConstantsCache struct {
	client goredis.Cmdable
	prefix string
}

type depositEntry struct {
	Base   string `json:"base"`
	Factor string `json:"factor"`
}

// NewConstantsCache creates a new Redis-backed chain constants cache.
func NewConstantsCache(client goredis.Cmdable) *ConstantsCache {
	return &ConstantsCache{
		client: client,
		prefix: "chain-constants:",
	}
}

func (c *ConstantsCache) depositKey(chainID string) string {
	return c.prefix + chainID + ":multisig-deposit"
}

// GetMultisigDeposit returns the cached deposit constants of chainID.
// Returns nil, nil on a miss.
func (c *ConstantsCache) GetMultisigDeposit(ctx context.Context, chainID string) (*domain.MultisigDeposit, error) {
	raw, err := c.client.Get(ctx, c.depositKey(chainID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis constants get: %w", err)
	}

	var entry depositEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode cached deposit: %w", err)
	}
	base, ok := new(big.Int).SetString(entry.Base, 10)
	if !ok {
		return nil, fmt.Errorf("decode cached deposit: bad base %q", entry.Base)
	}
	factor, ok := new(big.Int).SetString(entry.Factor, 10)
	if !ok {
		return nil, fmt.Errorf("decode cached deposit: bad factor %q", entry.Factor)
	}
	return &domain.MultisigDeposit{Base: base, Factor: factor}, nil
}

// SetMultisigDeposit stores the deposit constants of chainID with ttl.
func (c *ConstantsCache) SetMultisigDeposit(ctx context.Context, chainID string, deposit domain.MultisigDeposit, ttl time.Duration) error {
	entry := depositEntry{Base: "0", Factor: "0"}
	if deposit.Base != nil {
		entry.Base = deposit.Base.String()
	}
	if deposit.Factor != nil {
		entry.Factor = deposit.Factor.String()
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode deposit: %w", err)
	}
	if err := c.client.Set(ctx, c.depositKey(chainID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis constants set: %w", err)
	}
	return nil
}
