package txbuilder

import "tx-composer/internal/core/domain"

// Leaf signs with one concrete account.
type Leaf struct {
	chain   domain.Chain
	account domain.AccountInWallet
	calls   *CallBuilder
}

// NewLeaf creates a leaf for account.
func NewLeaf(chain domain.Chain, account domain.AccountInWallet) *Leaf {
	return &Leaf{
		chain:   chain,
		account: account,
		calls:   NewCallBuilder(),
	}
}

// Account returns the signer of this leaf.
func (l *Leaf) Account() domain.AccountInWallet {
	return l.account
}

func (l *Leaf) Chain() domain.Chain {
	return l.chain
}

func (l *Leaf) CallBuilder() *CallBuilder {
	return l.calls
}

func (l *Leaf) Visit(v Visitor) {
	Visit(l, v)
}

func (l *Leaf) SubmittableExtrinsic() (domain.Call, bool) {
	return l.submittable(identity)
}

func (l *Leaf) UnsignedTransaction(opts domain.TxOptions, info domain.TxInfo) (*domain.UnsignedTransaction, error) {
	return l.unsigned(opts, info, identity)
}

func (l *Leaf) info() LeafInfo {
	return LeafInfo{Account: l.account}
}

func (l *Leaf) submittable(wrap wrapFunc) (domain.Call, bool) {
	c, ok := l.calls.current()
	if !ok {
		return domain.Call{}, false
	}
	return wrap(c.FeeProbe), true
}

func (l *Leaf) unsigned(opts domain.TxOptions, info domain.TxInfo, wrap wrapFunc) (*domain.UnsignedTransaction, error) {
	c, ok := l.calls.current()
	if !ok {
		return nil, ErrNoCalls
	}
	tx, err := c.Sign(opts, info)
	if err != nil {
		return nil, err
	}
	tx.Call = wrap(tx.Call)
	return tx, nil
}
