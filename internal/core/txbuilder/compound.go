package txbuilder

import (
	"fmt"

	"tx-composer/internal/core/domain"
)

type compoundState struct {
	selected domain.Account
	inner    Builder
}

// CompoundWallet holds several interchangeable shards of one wallet and
// delegates to the selected one.
type CompoundWallet struct {
	chain       domain.Chain
	wallet      domain.Wallet
	shards      []domain.Account
	createInner CreateInner

	state compoundState
}

// NewCompoundWallet creates a compound node selecting the first shard.
func NewCompoundWallet(chain domain.Chain, wallet domain.Wallet, shards []domain.Account, createInner CreateInner) (*CompoundWallet, error) {
	if len(shards) == 0 {
		return nil, fmt.Errorf("%w: wallet %d", ErrEmptyShardList, wallet.ID)
	}

	c := &CompoundWallet{
		chain:       chain,
		wallet:      wallet,
		shards:      append([]domain.Account(nil), shards...),
		createInner: createInner,
	}

	inner, err := createInner(domain.AccountInWallet{Wallet: wallet, Account: c.shards[0]})
	if err != nil {
		return nil, fmt.Errorf("build shard %s: %w", c.shards[0].AccountID, err)
	}
	c.state = compoundState{selected: c.shards[0], inner: inner}
	return c, nil
}

// Wallet returns the compound wallet.
func (c *CompoundWallet) Wallet() domain.Wallet {
	return c.wallet
}

// Shards returns the sibling accounts of the wallet.
func (c *CompoundWallet) Shards() []domain.Account {
	return append([]domain.Account(nil), c.shards...)
}

// SelectedShard returns the active shard.
func (c *CompoundWallet) SelectedShard() domain.Account {
	return c.state.selected
}

// Inner returns the subtree of the selected shard.
func (c *CompoundWallet) Inner() Builder {
	return c.state.inner
}

// UpdateSelectedShard switches the active shard, carrying the configured
// calls over. Selecting the current shard is a no-op.
func (c *CompoundWallet) UpdateSelectedShard(shard domain.Account) error {
	if sameShard(c.state.selected, shard) {
		return nil
	}

	candidate, ok := c.findShard(shard)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownShard, shard.AccountID)
	}

	inner, err := c.createInner(domain.AccountInWallet{Wallet: c.wallet, Account: candidate})
	if err != nil {
		return fmt.Errorf("build shard %s: %w", candidate.AccountID, err)
	}
	inner.CallBuilder().InitFrom(c.CallBuilder())

	c.state = compoundState{selected: candidate, inner: inner}
	return nil
}

// builderFor returns the subtree signing for shard without changing the
// selection. Non-selected shards get a fresh subtree carrying the current calls.
func (c *CompoundWallet) builderFor(shard domain.Account) (Builder, error) {
	if sameShard(c.state.selected, shard) {
		return c.state.inner, nil
	}
	candidate, ok := c.findShard(shard)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShard, shard.AccountID)
	}
	inner, err := c.createInner(domain.AccountInWallet{Wallet: c.wallet, Account: candidate})
	if err != nil {
		return nil, fmt.Errorf("build shard %s: %w", candidate.AccountID, err)
	}
	inner.CallBuilder().InitFrom(c.CallBuilder())
	return inner, nil
}

func (c *CompoundWallet) findShard(shard domain.Account) (domain.Account, bool) {
	for _, s := range c.shards {
		if sameShard(s, shard) {
			return s, true
		}
	}
	return domain.Account{}, false
}

func sameShard(a, b domain.Account) bool {
	return a.ID == b.ID && a.AccountID == b.AccountID
}

func (c *CompoundWallet) Chain() domain.Chain {
	return c.chain
}

func (c *CompoundWallet) CallBuilder() *CallBuilder {
	return c.state.inner.CallBuilder()
}

func (c *CompoundWallet) Visit(v Visitor) {
	Visit(c, v)
}

func (c *CompoundWallet) SubmittableExtrinsic() (domain.Call, bool) {
	return c.submittable(identity)
}

func (c *CompoundWallet) UnsignedTransaction(opts domain.TxOptions, info domain.TxInfo) (*domain.UnsignedTransaction, error) {
	return c.unsigned(opts, info, identity)
}

func (c *CompoundWallet) info() CompoundWalletInfo {
	return CompoundWalletInfo{
		Wallet:              c.wallet,
		ChildrenAccounts:    c.Shards(),
		SelectedShard:       c.state.selected,
		UpdateSelectedShard: c.UpdateSelectedShard,
	}
}

func (c *CompoundWallet) submittable(wrap wrapFunc) (domain.Call, bool) {
	return c.state.inner.submittable(wrap)
}

func (c *CompoundWallet) unsigned(opts domain.TxOptions, info domain.TxInfo, wrap wrapFunc) (*domain.UnsignedTransaction, error) {
	return c.state.inner.unsigned(opts, info, wrap)
}
