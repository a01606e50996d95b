package txbuilder

import "tx-composer/internal/core/domain"

// NodeKind names a node kind in a Shape.
type NodeKind string

const (
	NodeKindLeaf           NodeKind = "LEAF"
	NodeKindMultisig       NodeKind = "MULTISIG"
	NodeKindCompoundWallet NodeKind = "COMPOUND_WALLET"
)

// Shape is a read-only snapshot of the active path, root first.
type Shape struct {
	Kind              NodeKind                 `json:"kind"`
	Wallet            domain.Wallet            `json:"wallet"`
	Account           *domain.Account          `json:"account,omitempty"`
	Threshold         int                      `json:"threshold,omitempty"`
	Signatories       []domain.AccountID       `json:"signatories,omitempty"`
	KnownSignatories  []domain.AccountInWallet `json:"known_signatories,omitempty"`
	SelectedSignatory *domain.AccountInWallet  `json:"selected_signatory,omitempty"`
	Shards            []domain.Account         `json:"shards,omitempty"`
	SelectedShard     *domain.Account          `json:"selected_shard,omitempty"`
	Child             *Shape                   `json:"child,omitempty"`
}

// Describe snapshots the active path of b.
func Describe(b Builder) Shape {
	var (
		root Shape
		slot = &root
		seen bool
	)
	next := func(s Shape) {
		if seen {
			slot.Child = &s
			slot = slot.Child
			return
		}
		root, seen = s, true
	}

	Visit(b, VisitorFuncs{
		Leaf: func(info LeafInfo) {
			account := info.Account.Account
			next(Shape{Kind: NodeKindLeaf, Wallet: info.Account.Wallet, Account: &account})
		},
		Multisig: func(info MultisigInfo) {
			account := info.Account
			next(Shape{
				Kind:              NodeKindMultisig,
				Wallet:            info.Wallet,
				Account:           &account,
				Threshold:         info.Threshold,
				Signatories:       info.Signatories,
				KnownSignatories:  info.KnownSignatories,
				SelectedSignatory: info.SelectedSignatory,
			})
		},
		CompoundWallet: func(info CompoundWalletInfo) {
			selected := info.SelectedShard
			next(Shape{
				Kind:          NodeKindCompoundWallet,
				Wallet:        info.Wallet,
				Shards:        info.ChildrenAccounts,
				SelectedShard: &selected,
			})
		},
	})
	return root
}
