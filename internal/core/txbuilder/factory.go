package txbuilder

import (
	"fmt"
	"slices"
	"sort"

	"tx-composer/internal/core/domain"
)

// Factory derives the tree shape from the wallet directory.
type Factory struct {
	chain               domain.Chain
	walletsByID         map[int64]domain.Wallet
	accountsByAccountID map[domain.AccountID][]domain.Account
}

// NewFactory indexes wallets by id and accounts by account id. Several
// accounts may share an account id across wallets; they are grouped.
func NewFactory(chain domain.Chain, wallets []domain.Wallet, accounts []domain.Account) *Factory {
	f := &Factory{
		chain:               chain,
		walletsByID:         make(map[int64]domain.Wallet, len(wallets)),
		accountsByAccountID: make(map[domain.AccountID][]domain.Account, len(accounts)),
	}
	for _, w := range wallets {
		f.walletsByID[w.ID] = w
	}
	for _, a := range accounts {
		f.accountsByAccountID[a.AccountID] = append(f.accountsByAccountID[a.AccountID], a)
	}
	for id, group := range f.accountsByAccountID {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].WalletID != group[j].WalletID {
				return group[i].WalletID < group[j].WalletID
			}
			return group[i].ID < group[j].ID
		})
		f.accountsByAccountID[id] = group
	}
	return f
}

// CreateTransactionBuilder builds the tree for the active wallet and accounts.
func CreateTransactionBuilder(
	activeWallet domain.Wallet,
	activeAccounts []domain.Account,
	allWallets []domain.Wallet,
	allAccounts []domain.Account,
	chain domain.Chain,
) (Builder, error) {
	return NewFactory(chain, allWallets, allAccounts).Create(activeWallet, activeAccounts)
}

// Create builds the root node. More than one active account yields a
// compound wallet over those accounts.
func (f *Factory) Create(wallet domain.Wallet, accounts []domain.Account) (Builder, error) {
	switch len(accounts) {
	case 0:
		return nil, fmt.Errorf("%w: wallet %d", ErrEmptyShardList, wallet.ID)
	case 1:
		return f.CreateInner(domain.AccountInWallet{Wallet: wallet, Account: accounts[0]})
	default:
		return NewCompoundWallet(f.chain, wallet, accounts, f.CreateInner)
	}
}

// CreateInner builds the subtree signing for one account.
func (f *Factory) CreateInner(account domain.AccountInWallet) (Builder, error) {
	return f.createInner(account, nil)
}

// createInner carries the multisig accounts above this node to reject
// signatory cycles.
func (f *Factory) createInner(account domain.AccountInWallet, path []domain.AccountID) (Builder, error) {
	switch account.Wallet.Type {
	case domain.WalletTypeMultisig:
		if slices.Contains(path, account.Account.AccountID) {
			return nil, fmt.Errorf("%w: %s", ErrSignatoryCycle, account.Account.AccountID)
		}
		next := append(slices.Clone(path), account.Account.AccountID)
		return NewMultisig(f.chain, account, f.KnownSignatories(account.Account), func(s domain.AccountInWallet) (Builder, error) {
			return f.createInner(s, next)
		})
	case domain.WalletTypeWatchOnly, domain.WalletTypeProxied:
		return nil, fmt.Errorf("%w: wallet %d is %s", ErrSigningNotAllowed, account.Wallet.ID, account.Wallet.Type)
	default:
		if !account.Wallet.Type.Valid() {
			return nil, fmt.Errorf("%w: wallet %d has unknown type %q", ErrSigningNotAllowed, account.Wallet.ID, account.Wallet.Type)
		}
		return NewLeaf(f.chain, account), nil
	}
}

// KnownSignatories resolves every signatory of a multisig account to the
// local wallets able to sign for it. Watch-only and proxied wallets are
// excluded. Order follows the signatory list, then wallet id.
func (f *Factory) KnownSignatories(multisig domain.Account) []domain.AccountInWallet {
	var known []domain.AccountInWallet
	seen := make(map[[2]int64]struct{})

	for _, signatory := range multisig.Signatories {
		for _, a := range f.accountsByAccountID[signatory] {
			if a.ChainID != "" && f.chain.ChainID != "" && a.ChainID != f.chain.ChainID {
				continue
			}
			w, ok := f.walletsByID[a.WalletID]
			if !ok || !w.Type.IsSigner() {
				continue
			}
			key := [2]int64{w.ID, a.ID}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			known = append(known, domain.AccountInWallet{Wallet: w, Account: a})
		}
	}
	return known
}
