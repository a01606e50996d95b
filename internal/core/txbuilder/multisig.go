package txbuilder

import (
	"fmt"

	"tx-composer/internal/core/domain"
)

// multisigState is replaced as a whole whenever the signatory changes.
// inner is nil when no signatory is known locally.
type multisigState struct {
	selected domain.AccountInWallet
	inner    Builder
}

// Multisig delegates signing to one selected signatory of a multisig account.
type Multisig struct {
	chain       domain.Chain
	account     domain.AccountInWallet
	known       []domain.AccountInWallet
	createInner CreateInner

	state multisigState
	// detached keeps calls when there is no signatory to hold them.
	detached *CallBuilder
}

// NewMultisig creates a multisig node selecting the first known signatory.
// An empty known list is valid: the node exists but cannot sign.
func NewMultisig(chain domain.Chain, account domain.AccountInWallet, known []domain.AccountInWallet, createInner CreateInner) (*Multisig, error) {
	m := &Multisig{
		chain:       chain,
		account:     account,
		known:       append([]domain.AccountInWallet(nil), known...),
		createInner: createInner,
		detached:    NewCallBuilder(),
	}
	if len(m.known) == 0 {
		return m, nil
	}

	inner, err := createInner(m.known[0])
	if err != nil {
		return nil, fmt.Errorf("build signatory %s of multisig %s: %w",
			m.known[0].Account.AccountID, account.Account.AccountID, err)
	}
	m.state = multisigState{selected: m.known[0], inner: inner}
	return m, nil
}

// Account returns the multisig wallet and account.
func (m *Multisig) Account() domain.AccountInWallet {
	return m.account
}

// Threshold returns the number of approvals the multisig needs.
func (m *Multisig) Threshold() int {
	return m.account.Account.Threshold
}

// KnownSignatories returns the locally known signers, in selection order.
func (m *Multisig) KnownSignatories() []domain.AccountInWallet {
	return append([]domain.AccountInWallet(nil), m.known...)
}

// SelectedSignatory returns the current signatory, false if none is known.
func (m *Multisig) SelectedSignatory() (domain.AccountInWallet, bool) {
	return m.state.selected, m.state.inner != nil
}

// HasSigner reports whether at least one signatory is known.
func (m *Multisig) HasSigner() bool {
	return m.state.inner != nil
}

// Inner returns the subtree of the selected signatory, nil if none.
func (m *Multisig) Inner() Builder {
	return m.state.inner
}

// UpdateSelectedSignatory switches the signing signatory. Calls configured
// on the previous signatory are carried over. Selecting the current
// signatory is a no-op.
func (m *Multisig) UpdateSelectedSignatory(signatory domain.AccountInWallet) error {
	if m.state.inner != nil && m.state.selected.Same(signatory) {
		return nil
	}

	candidate, ok := m.findKnown(signatory)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSignatory, signatory.Account.AccountID)
	}

	inner, err := m.createInner(candidate)
	if err != nil {
		return fmt.Errorf("build signatory %s: %w", candidate.Account.AccountID, err)
	}
	inner.CallBuilder().InitFrom(m.CallBuilder())

	m.state = multisigState{selected: candidate, inner: inner}
	return nil
}

func (m *Multisig) findKnown(signatory domain.AccountInWallet) (domain.AccountInWallet, bool) {
	for _, k := range m.known {
		if k.Same(signatory) {
			return k, true
		}
	}
	return domain.AccountInWallet{}, false
}

func (m *Multisig) Chain() domain.Chain {
	return m.chain
}

func (m *Multisig) CallBuilder() *CallBuilder {
	if m.state.inner == nil {
		return m.detached
	}
	return m.state.inner.CallBuilder()
}

func (m *Multisig) Visit(v Visitor) {
	Visit(m, v)
}

func (m *Multisig) SubmittableExtrinsic() (domain.Call, bool) {
	return m.submittable(identity)
}

func (m *Multisig) UnsignedTransaction(opts domain.TxOptions, info domain.TxInfo) (*domain.UnsignedTransaction, error) {
	return m.unsigned(opts, info, identity)
}

func (m *Multisig) info() MultisigInfo {
	info := MultisigInfo{
		Wallet:                  m.account.Wallet,
		Account:                 m.account.Account,
		Threshold:               m.Threshold(),
		Signatories:             append([]domain.AccountID(nil), m.account.Account.Signatories...),
		KnownSignatories:        m.KnownSignatories(),
		UpdateSelectedSignatory: m.UpdateSelectedSignatory,
	}
	if m.state.inner != nil {
		selected := m.state.selected
		info.SelectedSignatory = &selected
	}
	return info
}

// wrapper composes the wrapping of the enclosing nodes with this
// multisig's own as_multi, outer multisig first.
func (m *Multisig) wrapper(outer wrapFunc) wrapFunc {
	others := m.otherSignatories()
	threshold := m.Threshold()
	return func(c domain.Call) domain.Call {
		return domain.AsMulti(outer(c), threshold, others)
	}
}

// otherSignatories lists the signatories except the selected one.
func (m *Multisig) otherSignatories() []domain.AccountID {
	selected := m.state.selected.Account.AccountID
	others := make([]domain.AccountID, 0, len(m.account.Account.Signatories))
	skipped := false
	for _, s := range m.account.Account.Signatories {
		if !skipped && s == selected {
			skipped = true
			continue
		}
		others = append(others, s)
	}
	return others
}

func (m *Multisig) submittable(wrap wrapFunc) (domain.Call, bool) {
	if m.state.inner == nil {
		return domain.Call{}, false
	}
	return m.state.inner.submittable(m.wrapper(wrap))
}

func (m *Multisig) unsigned(opts domain.TxOptions, info domain.TxInfo, wrap wrapFunc) (*domain.UnsignedTransaction, error) {
	if m.state.inner == nil {
		return nil, fmt.Errorf("%w: multisig %s has no known signatory", ErrNoSigningAccounts, m.account.Account.AccountID)
	}
	return m.state.inner.unsigned(opts, info, m.wrapper(wrap))
}
