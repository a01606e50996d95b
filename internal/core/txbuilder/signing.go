package txbuilder

import (
	"fmt"

	"tx-composer/internal/core/domain"
	"tx-composer/pkg/ss58"
)

// SigningAccounts are the accounts that will each sign one transaction.
type SigningAccounts struct {
	Wallet   domain.Wallet
	Accounts []domain.Account
}

// GetSigningAccounts resolves the signers of the active path. The deepest
// node decides, except that the shard leaf of a compound wallet does not
// narrow the compound down to itself: every shard signs its own copy.
func GetSigningAccounts(b Builder) (*SigningAccounts, bool) {
	var (
		result       *SigningAccounts
		fromCompound bool
	)

	Visit(b, VisitorFuncs{
		Leaf: func(info LeafInfo) {
			if fromCompound && result.Wallet.ID == info.Account.Wallet.ID {
				return
			}
			result = &SigningAccounts{
				Wallet:   info.Account.Wallet,
				Accounts: []domain.Account{info.Account.Account},
			}
			fromCompound = false
		},
		Multisig: func(info MultisigInfo) {
			if info.SelectedSignatory == nil {
				result, fromCompound = nil, false
				return
			}
			result = &SigningAccounts{
				Wallet:   info.SelectedSignatory.Wallet,
				Accounts: []domain.Account{info.SelectedSignatory.Account},
			}
			fromCompound = false
		},
		CompoundWallet: func(info CompoundWalletInfo) {
			result = &SigningAccounts{
				Wallet:   info.Wallet,
				Accounts: info.ChildrenAccounts,
			}
			fromCompound = true
		},
	})

	if result == nil || len(result.Accounts) == 0 {
		return nil, false
	}
	return result, true
}

// RequireSigningAccounts is GetSigningAccounts returning ErrNoSigningAccounts
// instead of false.
func RequireSigningAccounts(b Builder) (*SigningAccounts, error) {
	s, ok := GetSigningAccounts(b)
	if !ok {
		return nil, ErrNoSigningAccounts
	}
	return s, nil
}

// Address encodes an account id with the chain's SS58 prefix.
func Address(chain domain.Chain, id domain.AccountID) (string, error) {
	addr, err := ss58.Encode(id[:], chain.AddressPrefix)
	if err != nil {
		return "", fmt.Errorf("encode address of %s: %w", id, err)
	}
	return addr, nil
}

// FindMultisig returns the multisig node on the active path whose account
// id matches, and whether one was found.
func FindMultisig(b Builder, accountID domain.AccountID) (*Multisig, bool) {
	for node := b; node != nil; {
		switch n := node.(type) {
		case *Multisig:
			if n.account.Account.AccountID == accountID {
				return n, true
			}
			node = n.state.inner
		case *CompoundWallet:
			node = n.state.inner
		default:
			return nil, false
		}
	}
	return nil, false
}

// FindCompoundWallet returns the compound node of walletID on the active path.
func FindCompoundWallet(b Builder, walletID int64) (*CompoundWallet, bool) {
	for node := b; node != nil; {
		switch n := node.(type) {
		case *CompoundWallet:
			if n.wallet.ID == walletID {
				return n, true
			}
			node = n.state.inner
		case *Multisig:
			node = n.state.inner
		default:
			return nil, false
		}
	}
	return nil, false
}
