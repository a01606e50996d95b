package txbuilder

import (
	"context"
	"fmt"

	"tx-composer/internal/core/domain"
)

// MetadataCreator fetches nonce, era and block data for each address,
// returning bundles in the order of addresses.
type MetadataCreator interface {
	CreateTransactionMetadata(ctx context.Context, addresses []string) ([]domain.TxMetadata, error)
}

// target is one signer reachable from the root, together with the subtree
// that builds its transaction.
type target struct {
	account domain.AccountInWallet
	build   func(domain.TxOptions, domain.TxInfo) (*domain.UnsignedTransaction, error)
}

// GetUnsignedTransactions builds one unsigned transaction per signing
// account, in the order returned by GetSigningAccounts.
func GetUnsignedTransactions(ctx context.Context, b Builder, q MetadataCreator) ([]*domain.UnsignedTransaction, error) {
	signers, err := RequireSigningAccounts(b)
	if err != nil {
		return nil, err
	}
	if _, ok := b.SubmittableExtrinsic(); !ok {
		return nil, ErrNoCalls
	}

	targets, err := collectTargets(b, identity)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, len(signers.Accounts))
	builds := make([]target, len(signers.Accounts))
	used := make([]bool, len(targets))
	for i, a := range signers.Accounts {
		addr, err := Address(b.Chain(), a.AccountID)
		if err != nil {
			return nil, err
		}
		addresses[i] = addr

		idx := matchTarget(targets, used, signers.Wallet, a)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s is not reachable in the tree", ErrNoSigningAccounts, a.AccountID)
		}
		used[idx] = true
		builds[i] = targets[idx]
	}

	metadata, err := q.CreateTransactionMetadata(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("create transaction metadata: %w", err)
	}
	if len(metadata) != len(addresses) {
		return nil, fmt.Errorf("create transaction metadata: got %d bundles for %d addresses", len(metadata), len(addresses))
	}

	txs := make([]*domain.UnsignedTransaction, len(builds))
	for i, t := range builds {
		tx, err := t.build(metadata[i].Options, metadata[i].Info)
		if err != nil {
			return nil, fmt.Errorf("unsigned transaction for %s: %w", addresses[i], err)
		}
		txs[i] = tx
	}
	return txs, nil
}

func matchTarget(targets []target, used []bool, wallet domain.Wallet, account domain.Account) int {
	for i, t := range targets {
		if used[i] {
			continue
		}
		if t.account.Wallet.ID == wallet.ID && t.account.Account.ID == account.ID &&
			t.account.Account.AccountID == account.AccountID {
			return i
		}
	}
	return -1
}

// collectTargets lists the leaves that can sign from b. Every shard of a
// compound wallet is a target; multisigs contribute their selected signatory.
func collectTargets(b Builder, wrap wrapFunc) ([]target, error) {
	switch n := b.(type) {
	case *Leaf:
		return []target{{
			account: n.account,
			build: func(opts domain.TxOptions, info domain.TxInfo) (*domain.UnsignedTransaction, error) {
				return n.unsigned(opts, info, wrap)
			},
		}}, nil
	case *Multisig:
		if n.state.inner == nil {
			return nil, nil
		}
		return collectTargets(n.state.inner, n.wrapper(wrap))
	case *CompoundWallet:
		// The selected shard goes first so that it wins when another
		// shard resolves to the same signatory.
		out, err := collectTargets(n.state.inner, wrap)
		if err != nil {
			return nil, err
		}
		for _, shard := range n.shards {
			if sameShard(shard, n.state.selected) {
				continue
			}
			sub, err := n.builderFor(shard)
			if err != nil {
				return nil, err
			}
			ts, err := collectTargets(sub, wrap)
			if err != nil {
				return nil, err
			}
			out = append(out, ts...)
		}
		return out, nil
	}
	return nil, nil
}
