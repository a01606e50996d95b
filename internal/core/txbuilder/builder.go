package txbuilder

import "tx-composer/internal/core/domain"

// Builder is a node of the transaction builder tree. The set of node kinds
// is closed: *Leaf, *Multisig and *CompoundWallet.
type Builder interface {
	// Chain returns the chain the tree builds transactions for.
	Chain() domain.Chain
	// CallBuilder returns the call builder of the currently active signer.
	CallBuilder() *CallBuilder
	// Visit walks the active path from this node down to its leaf.
	Visit(v Visitor)
	// SubmittableExtrinsic returns the call used to probe fees, if any.
	SubmittableExtrinsic() (domain.Call, bool)
	// UnsignedTransaction builds the payload of the active signer.
	UnsignedTransaction(opts domain.TxOptions, info domain.TxInfo) (*domain.UnsignedTransaction, error)

	submittable(wrap wrapFunc) (domain.Call, bool)
	unsigned(opts domain.TxOptions, info domain.TxInfo, wrap wrapFunc) (*domain.UnsignedTransaction, error)
}

// CreateInner builds the subtree signing on behalf of account.
type CreateInner func(account domain.AccountInWallet) (Builder, error)

// wrapFunc rewrites a call on its way from the leaf to the chain.
type wrapFunc func(domain.Call) domain.Call

func identity(c domain.Call) domain.Call { return c }

var (
	_ Builder = (*Leaf)(nil)
	_ Builder = (*Multisig)(nil)
	_ Builder = (*CompoundWallet)(nil)
)

// LeafInfo is passed to Visitor.VisitLeaf.
type LeafInfo struct {
	Account domain.AccountInWallet
}

// MultisigInfo is passed to Visitor.VisitMultisig. SelectedSignatory is nil
// when no signatory of the multisig is known locally.
type MultisigInfo struct {
	Wallet                  domain.Wallet
	Account                 domain.Account
	Threshold               int
	Signatories             []domain.AccountID
	KnownSignatories        []domain.AccountInWallet
	SelectedSignatory       *domain.AccountInWallet
	UpdateSelectedSignatory func(domain.AccountInWallet) error
}

// CompoundWalletInfo is passed to Visitor.VisitCompoundWallet.
type CompoundWalletInfo struct {
	Wallet              domain.Wallet
	ChildrenAccounts    []domain.Account
	SelectedShard       domain.Account
	UpdateSelectedShard func(domain.Account) error
}

// Visitor receives one callback per node on the active path, root first.
type Visitor interface {
	VisitLeaf(info LeafInfo)
	VisitMultisig(info MultisigInfo)
	VisitCompoundWallet(info CompoundWalletInfo)
}

// VisitorFuncs adapts plain functions to Visitor. Nil fields are skipped.
type VisitorFuncs struct {
	Leaf           func(LeafInfo)
	Multisig       func(MultisigInfo)
	CompoundWallet func(CompoundWalletInfo)
}

func (f VisitorFuncs) VisitLeaf(info LeafInfo) {
	if f.Leaf != nil {
		f.Leaf(info)
	}
}

func (f VisitorFuncs) VisitMultisig(info MultisigInfo) {
	if f.Multisig != nil {
		f.Multisig(info)
	}
}

func (f VisitorFuncs) VisitCompoundWallet(info CompoundWalletInfo) {
	if f.CompoundWallet != nil {
		f.CompoundWallet(info)
	}
}

// Visit dispatches v over the active path of b. A composite node is
// notified before its child, and the child is read after the callback
// returns so a selection change made by v is followed.
func Visit(b Builder, v Visitor) {
	switch n := b.(type) {
	case *Leaf:
		v.VisitLeaf(n.info())
	case *Multisig:
		v.VisitMultisig(n.info())
		if inner := n.state.inner; inner != nil {
			Visit(inner, v)
		}
	case *CompoundWallet:
		v.VisitCompoundWallet(n.info())
		Visit(n.state.inner, v)
	}
}
