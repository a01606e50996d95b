package domain

// WalletType is the family of a key-management unit.
type WalletType string

const (
	WalletTypePolkadotVault WalletType = "POLKADOT_VAULT"
	WalletTypeMultiShard    WalletType = "MULTISHARD_PARITY_SIGNER"
	WalletTypeWalletConnect WalletType = "WALLET_CONNECT"
	WalletTypeNovaWallet    WalletType = "NOVA_WALLET"
	WalletTypeMultisig      WalletType = "MULTISIG"
	WalletTypeWatchOnly     WalletType = "WATCH_ONLY"
	WalletTypeProxied       WalletType = "PROXIED"
)

// IsSigner reports whether wallets of this family can produce a signature,
// either directly or through a delegated signatory.
func (t WalletType) IsSigner() bool {
	switch t {
	case WalletTypeWatchOnly, WalletTypeProxied, "":
		return false
	default:
		return true
	}
}

// Valid reports whether t is a known wallet family.
func (t WalletType) Valid() bool {
	switch t {
	case WalletTypePolkadotVault, WalletTypeMultiShard, WalletTypeWalletConnect,
		WalletTypeNovaWallet, WalletTypeMultisig, WalletTypeWatchOnly, WalletTypeProxied:
		return true
	}
	return false
}

// Wallet is owned by the persistence layer and never mutated here.
type Wallet struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Type     WalletType `json:"type"`
	IsActive bool       `json:"is_active"`
}

// AccountType discriminates ordinary, derived, multisig and proxied accounts.
type AccountType string

const (
	AccountTypeBase     AccountType = "BASE"
	AccountTypeShard    AccountType = "SHARD"
	AccountTypeMultisig AccountType = "MULTISIG"
	AccountTypeProxied  AccountType = "PROXIED"
)

// Account belongs to exactly one wallet. Several wallets may hold an account
// with the same AccountID (e.g. a watch-only copy of a vault key).
type Account struct {
	ID          int64       `json:"id"`
	WalletID    int64       `json:"wallet_id"`
	AccountID   AccountID   `json:"account_id"`
	ChainID     string      `json:"chain_id,omitempty"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	Threshold   int         `json:"threshold,omitempty"`
	Signatories []AccountID `json:"signatories,omitempty"`
}

// IsMultisig returns true for multisig accounts.
func (a *Account) IsMultisig() bool {
	return a.Type == AccountTypeMultisig
}

// AccountInWallet pairs a signer account with the wallet holding it.
type AccountInWallet struct {
	Wallet  Wallet  `json:"wallet"`
	Account Account `json:"account"`
}

// Same reports whether both pairs point to the same wallet and account.
func (a AccountInWallet) Same(other AccountInWallet) bool {
	return a.Wallet.ID == other.Wallet.ID && a.Account.ID == other.Account.ID &&
		a.Account.AccountID == other.Account.AccountID
}
