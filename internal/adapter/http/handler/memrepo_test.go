package handler_test

import (
	"context"
	"sync"

	"tx-composer/internal/core/domain"
)

// --- In-Memory Wallet Directory ---

type inMemoryDirectory struct {
	mu       sync.RWMutex
	wallets  []domain.Wallet
	accounts []domain.Account
}

func newInMemoryDirectory(wallets []domain.Wallet, accounts []domain.Account) *inMemoryDirectory {
	return &inMemoryDirectory{
		wallets:  append([]domain.Wallet(nil), wallets...),
		accounts: append([]domain.Account(nil), accounts...),
	}
}

func (d *inMemoryDirectory) GetByID(_ context.Context, id int64) (*domain.Wallet, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, w := range d.wallets {
		if w.ID == id {
			w := w
			return &w, nil
		}
	}
	return nil, nil
}

func (d *inMemoryDirectory) List(_ context.Context) ([]domain.Wallet, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]domain.Wallet(nil), d.wallets...), nil
}

func (d *inMemoryDirectory) ListByWallet(_ context.Context, walletID int64, chainID string) ([]domain.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []domain.Account
	for _, a := range d.accounts {
		if a.WalletID == walletID && onChain(a, chainID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (d *inMemoryDirectory) ListByChain(_ context.Context, chainID string) ([]domain.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []domain.Account
	for _, a := range d.accounts {
		if onChain(a, chainID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func onChain(a domain.Account, chainID string) bool {
	return a.ChainID == "" || a.ChainID == chainID
}

// --- In-Memory Operator Repo ---

type inMemoryOperatorRepo struct {
	mu        sync.RWMutex
	operators map[string]*domain.Operator
}

func newInMemoryOperatorRepo() *inMemoryOperatorRepo {
	return &inMemoryOperatorRepo{operators: make(map[string]*domain.Operator)}
}

func (r *inMemoryOperatorRepo) add(op *domain.Operator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	op.ID = int64(len(r.operators) + 1)
	r.operators[op.Username] = op
}

func (r *inMemoryOperatorRepo) GetByUsername(_ context.Context, username string) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.operators[username]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}
