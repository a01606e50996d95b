package txbuilder

import "tx-composer/internal/core/domain"

// SigningClosure turns per-signer metadata into the final unsigned payload.
type SigningClosure func(opts domain.TxOptions, info domain.TxInfo) (*domain.UnsignedTransaction, error)

// CallBuilding is one candidate call: a fee probe plus the closure that
// produces the unsigned transaction.
type CallBuilding struct {
	FeeProbe domain.Call
	Sign     SigningClosure
}

// NewCallBuilding creates a CallBuilding that stamps call with the signer's metadata.
func NewCallBuilding(call domain.Call) CallBuilding {
	return CallBuilding{
		FeeProbe: call,
		Sign: func(opts domain.TxOptions, info domain.TxInfo) (*domain.UnsignedTransaction, error) {
			address := info.Address
			if address == "" {
				address = opts.Address
			}
			return &domain.UnsignedTransaction{
				Address: address,
				ChainID: info.ChainID,
				Call:    call,
				Options: opts,
				Info:    info,
			}, nil
		},
	}
}

// CallBuilder holds the candidate calls of the active signer of a node.
// It is not safe for concurrent use.
type CallBuilder struct {
	calls []CallBuilding
}

// NewCallBuilder returns an empty CallBuilder.
func NewCallBuilder() *CallBuilder {
	return &CallBuilder{}
}

// AddCall appends a candidate call.
func (b *CallBuilder) AddCall(c CallBuilding) {
	b.calls = append(b.calls, c)
}

// SetCall replaces every candidate with c.
func (b *CallBuilder) SetCall(c CallBuilding) {
	b.calls = []CallBuilding{c}
}

// ResetCalls drops every candidate.
func (b *CallBuilder) ResetCalls() {
	b.calls = nil
}

// InitFrom copies the candidates of other, keeping their order.
func (b *CallBuilder) InitFrom(other *CallBuilder) {
	if other == nil || other == b {
		return
	}
	b.calls = other.CurrentCalls()
}

// CurrentCalls returns a copy of the candidates.
func (b *CallBuilder) CurrentCalls() []CallBuilding {
	if len(b.calls) == 0 {
		return nil
	}
	out := make([]CallBuilding, len(b.calls))
	copy(out, b.calls)
	return out
}

// Len returns the number of candidates.
func (b *CallBuilder) Len() int {
	return len(b.calls)
}

// current folds the candidates into the call that will be submitted.
// Several candidates are batched atomically with utility.batchAll.
func (b *CallBuilder) current() (CallBuilding, bool) {
	switch len(b.calls) {
	case 0:
		return CallBuilding{}, false
	case 1:
		return b.calls[0], true
	}

	calls := b.CurrentCalls()
	probes := make([]domain.Call, len(calls))
	for i, c := range calls {
		probes[i] = c.FeeProbe
	}

	return CallBuilding{
		FeeProbe: batchAll(probes),
		Sign: func(opts domain.TxOptions, info domain.TxInfo) (*domain.UnsignedTransaction, error) {
			var (
				first *domain.UnsignedTransaction
				inner = make([]domain.Call, 0, len(calls))
			)
			for _, c := range calls {
				tx, err := c.Sign(opts, info)
				if err != nil {
					return nil, err
				}
				if first == nil {
					first = tx
				}
				inner = append(inner, tx.Call)
			}
			out := *first
			out.Call = batchAll(inner)
			return &out, nil
		},
	}, true
}

func batchAll(calls []domain.Call) domain.Call {
	return domain.Call{
		Section: "utility",
		Method:  "batchAll",
		Args:    map[string]any{"calls": calls},
	}
}
