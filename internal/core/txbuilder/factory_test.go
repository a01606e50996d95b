package txbuilder_test

import (
	"testing"

	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/txbuilder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// directory is a small wallet directory:
//
//	1 vault       acc 10 (0xa1)
//	2 nova        acc 20 (0xb2)
//	3 multisig    acc 30 (0xd1) 2-of [0xa1 0xb2 0xc3]
//	4 multisig    acc 40 (0xe1) 2-of [0xd1 0xc3]
//	5 multishard  acc 51..53
//	6 watch-only  acc 60 (0xa1)
//	7 proxied     acc 70 (0xb2)
//	11 multisig   acc 111 (0x81) 2-of [0xa1 0xb2], acc 112 (0x82) 1-of [0xb2 0xa1]
type directory struct {
	wallets  []domain.Wallet
	accounts []domain.Account
}

var (
	multisigShards = wallet(11, domain.WalletTypeMultisig)
	twoOfTwoShard  = multisigAccount(111, 11, 0x81, 2, 0xa1, 0xb2)
	oneOfTwoShard  = multisigAccount(112, 11, 0x82, 1, 0xb2, 0xa1)
)

func newDirectory() directory {
	return directory{
		wallets: []domain.Wallet{
			wallet(1, domain.WalletTypePolkadotVault),
			wallet(2, domain.WalletTypeNovaWallet),
			wallet(3, domain.WalletTypeMultisig),
			wallet(4, domain.WalletTypeMultisig),
			shardWallet,
			wallet(6, domain.WalletTypeWatchOnly),
			wallet(7, domain.WalletTypeProxied),
			multisigShards,
		},
		accounts: []domain.Account{
			baseAccount(10, 1, 0xa1),
			baseAccount(20, 2, 0xb2),
			multisigAccount(30, 3, 0xd1, 2, 0xa1, 0xb2, 0xc3),
			multisigAccount(40, 4, 0xe1, 2, 0xd1, 0xc3),
			shard1, shard2, shard3,
			baseAccount(60, 6, 0xa1),
			baseAccount(70, 7, 0xb2),
			twoOfTwoShard, oneOfTwoShard,
		},
	}
}

func (d directory) wallet(id int64) domain.Wallet {
	for _, w := range d.wallets {
		if w.ID == id {
			return w
		}
	}
	panic("unknown wallet")
}

func (d directory) accountsOf(walletID int64) []domain.Account {
	var out []domain.Account
	for _, a := range d.accounts {
		if a.WalletID == walletID {
			out = append(out, a)
		}
	}
	return out
}

func (d directory) build(t *testing.T, walletID int64) txbuilder.Builder {
	t.Helper()
	b, err := txbuilder.CreateTransactionBuilder(d.wallet(walletID), d.accountsOf(walletID), d.wallets, d.accounts, westend)
	require.NoError(t, err)
	return b
}

func TestFactory_SingleAccountIsLeaf(t *testing.T) {
	b := newDirectory().build(t, 1)

	leaf, ok := b.(*txbuilder.Leaf)
	require.True(t, ok)
	assert.Equal(t, int64(10), leaf.Account().Account.ID)
	assert.Equal(t, westend, leaf.Chain())
}

func TestFactory_SeveralAccountsAreCompound(t *testing.T) {
	b := newDirectory().build(t, 5)

	c, ok := b.(*txbuilder.CompoundWallet)
	require.True(t, ok)
	assert.Len(t, c.Shards(), 3)
	_, isLeaf := c.Inner().(*txbuilder.Leaf)
	assert.True(t, isLeaf)
}

func TestFactory_TwoAccountsOfAnyWalletAreCompound(t *testing.T) {
	d := newDirectory()
	b, err := txbuilder.CreateTransactionBuilder(d.wallet(1),
		[]domain.Account{baseAccount(10, 1, 0xa1), baseAccount(11, 1, 0xa2)}, d.wallets, d.accounts, westend)
	require.NoError(t, err)

	_, ok := b.(*txbuilder.CompoundWallet)
	assert.True(t, ok)
}

func TestFactory_NoAccounts(t *testing.T) {
	d := newDirectory()
	_, err := txbuilder.CreateTransactionBuilder(d.wallet(1), nil, d.wallets, d.accounts, westend)
	assert.ErrorIs(t, err, txbuilder.ErrEmptyShardList)
}

func TestFactory_WalletsThatCannotSign(t *testing.T) {
	tests := []struct {
		name     string
		walletID int64
	}{
		{name: "watch only", walletID: 6},
		{name: "proxied", walletID: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDirectory()
			_, err := txbuilder.CreateTransactionBuilder(d.wallet(tt.walletID), d.accountsOf(tt.walletID), d.wallets, d.accounts, westend)
			assert.ErrorIs(t, err, txbuilder.ErrSigningNotAllowed)
		})
	}
}

func TestFactory_UnknownWalletType(t *testing.T) {
	d := newDirectory()
	odd := domain.Wallet{ID: 8, Type: "LEDGER_LEGACY"}
	_, err := txbuilder.CreateTransactionBuilder(odd, []domain.Account{baseAccount(80, 8, 0x80)}, d.wallets, d.accounts, westend)
	assert.ErrorIs(t, err, txbuilder.ErrSigningNotAllowed)
}

func TestFactory_MultisigKnownSignatoriesSkipNonSigners(t *testing.T) {
	d := newDirectory()
	b := d.build(t, 3)

	m, ok := b.(*txbuilder.Multisig)
	require.True(t, ok)

	known := m.KnownSignatories()
	require.Len(t, known, 2)
	assert.Equal(t, int64(1), known[0].Wallet.ID)
	assert.Equal(t, int64(2), known[1].Wallet.ID)

	selected, ok := m.SelectedSignatory()
	require.True(t, ok)
	assert.Equal(t, int64(10), selected.Account.ID)
}

func TestFactory_KnownSignatoriesFiltersChainAndDuplicates(t *testing.T) {
	d := newDirectory()
	otherChain := baseAccount(11, 1, 0xc3)
	otherChain.ChainID = "0xdeadbeef"
	accounts := append(d.accounts, otherChain, baseAccount(10, 1, 0xa1))

	f := txbuilder.NewFactory(westend, d.wallets, accounts)
	known := f.KnownSignatories(multisigAccount(30, 3, 0xd1, 2, 0xa1, 0xb2, 0xc3))

	require.Len(t, known, 2)
	assert.Equal(t, int64(10), known[0].Account.ID)
	assert.Equal(t, int64(20), known[1].Account.ID)
}

func TestFactory_MultisigWithoutLocalSignatories(t *testing.T) {
	d := newDirectory()
	orphan := multisigAccount(90, 9, 0xf9, 2, 0xc3, 0xc4)
	b, err := txbuilder.CreateTransactionBuilder(wallet(9, domain.WalletTypeMultisig),
		[]domain.Account{orphan}, d.wallets, append(d.accounts, orphan), westend)
	require.NoError(t, err)

	m, ok := b.(*txbuilder.Multisig)
	require.True(t, ok)
	assert.False(t, m.HasSigner())

	_, ok = txbuilder.GetSigningAccounts(b)
	assert.False(t, ok)
}

func TestFactory_NestedMultisig(t *testing.T) {
	b := newDirectory().build(t, 4)

	outer, ok := b.(*txbuilder.Multisig)
	require.True(t, ok)
	inner, ok := outer.Inner().(*txbuilder.Multisig)
	require.True(t, ok)
	assert.Equal(t, accountID(0xd1), inner.Account().Account.AccountID)
	leaf, ok := inner.Inner().(*txbuilder.Leaf)
	require.True(t, ok)
	assert.Equal(t, accountID(0xa1), leaf.Account().Account.AccountID)

	b.CallBuilder().SetCall(txbuilder.NewCallBuilding(remark("nested")))
	probe, ok := b.SubmittableExtrinsic()
	require.True(t, ok)

	// the signer submits through the inner multisig, which approves the outer one
	outerCall := domain.AsMulti(remark("nested"), 2, []domain.AccountID{accountID(0xc3)})
	want := domain.AsMulti(outerCall, 2, []domain.AccountID{accountID(0xb2), accountID(0xc3)})
	assert.Equal(t, want, probe)
}

func TestFactory_CompoundOfMultisigAccounts(t *testing.T) {
	b := newDirectory().build(t, 11)

	c, ok := b.(*txbuilder.CompoundWallet)
	require.True(t, ok)
	assert.Equal(t, []domain.Account{twoOfTwoShard, oneOfTwoShard}, c.Shards())

	m, ok := c.Inner().(*txbuilder.Multisig)
	require.True(t, ok)
	assert.Equal(t, twoOfTwoShard, m.Account().Account)
	selected, ok := m.SelectedSignatory()
	require.True(t, ok)
	assert.Equal(t, int64(10), selected.Account.ID)

	require.NoError(t, c.UpdateSelectedShard(oneOfTwoShard))
	m, ok = c.Inner().(*txbuilder.Multisig)
	require.True(t, ok)
	selected, ok = m.SelectedSignatory()
	require.True(t, ok)
	assert.Equal(t, int64(20), selected.Account.ID)
}

func TestFactory_SignatoryCycle(t *testing.T) {
	wallets := []domain.Wallet{
		wallet(1, domain.WalletTypeMultisig),
		wallet(2, domain.WalletTypeMultisig),
	}
	accounts := []domain.Account{
		multisigAccount(10, 1, 0x01, 1, 0x02),
		multisigAccount(20, 2, 0x02, 1, 0x01),
	}

	_, err := txbuilder.CreateTransactionBuilder(wallets[0], accounts[:1], wallets, accounts, westend)
	assert.ErrorIs(t, err, txbuilder.ErrSignatoryCycle)
}
