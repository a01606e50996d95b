package domain

import (
	"bytes"
	"math/big"
	"sort"
)

// AmountReduction maps accounts to the amount they will be debited.
// It is immutable once built.
type AmountReduction struct {
	amounts map[AccountID]*big.Int
}

// Get returns a copy of the amount owed by id.
func (r AmountReduction) Get(id AccountID) (*big.Int, bool) {
	v, ok := r.amounts[id]
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(v), true
}

// Len returns the number of distinct payer accounts.
func (r AmountReduction) Len() int {
	return len(r.amounts)
}

// AccountIDs returns the payer accounts in byte order.
func (r AmountReduction) AccountIDs() []AccountID {
	ids := make([]AccountID, 0, len(r.amounts))
	for id := range r.amounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

// Total sums every entry.
func (r AmountReduction) Total() *big.Int {
	total := new(big.Int)
	for _, v := range r.amounts {
		total.Add(total, v)
	}
	return total
}

// AmountReductionBuilder accumulates debits, merging duplicate accounts.
type AmountReductionBuilder struct {
	amounts map[AccountID]*big.Int
}

// NewAmountReductionBuilder creates an empty builder.
func NewAmountReductionBuilder() *AmountReductionBuilder {
	return &AmountReductionBuilder{amounts: make(map[AccountID]*big.Int)}
}

// AddReductionAmount adds amount to the debit of id. Nil amounts are ignored.
func (b *AmountReductionBuilder) AddReductionAmount(id AccountID, amount *big.Int) *AmountReductionBuilder {
	if amount == nil {
		return b
	}
	if cur, ok := b.amounts[id]; ok {
		cur.Add(cur, amount)
		return b
	}
	b.amounts[id] = new(big.Int).Set(amount)
	return b
}

// Build returns an immutable snapshot of the accumulated debits.
func (b *AmountReductionBuilder) Build() AmountReduction {
	out := make(map[AccountID]*big.Int, len(b.amounts))
	for id, v := range b.amounts {
		out[id] = new(big.Int).Set(v)
	}
	return AmountReduction{amounts: out}
}
