package txbuilder_test

import (
	"testing"

	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/txbuilder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	vaultSigner = domain.AccountInWallet{
		Wallet:  wallet(1, domain.WalletTypePolkadotVault),
		Account: baseAccount(10, 1, 0xa1),
	}
	novaSigner = domain.AccountInWallet{
		Wallet:  wallet(2, domain.WalletTypeNovaWallet),
		Account: baseAccount(20, 2, 0xb2),
	}
	twoOfThree = domain.AccountInWallet{
		Wallet:  wallet(3, domain.WalletTypeMultisig),
		Account: multisigAccount(30, 3, 0xd1, 2, 0xa1, 0xb2, 0xc3),
	}
)

func newTwoOfThree(t *testing.T) *txbuilder.Multisig {
	t.Helper()
	m, err := txbuilder.NewMultisig(westend, twoOfThree,
		[]domain.AccountInWallet{vaultSigner, novaSigner}, leafFactory(westend))
	require.NoError(t, err)
	return m
}

func TestMultisig_SelectsFirstKnownSignatory(t *testing.T) {
	m := newTwoOfThree(t)

	selected, ok := m.SelectedSignatory()
	require.True(t, ok)
	assert.Equal(t, vaultSigner, selected)
	assert.True(t, m.HasSigner())
	assert.Equal(t, 2, m.Threshold())
	assert.Same(t, m.Inner().CallBuilder(), m.CallBuilder())
}

func TestMultisig_ReselectingSameSignatoryIsNoOp(t *testing.T) {
	m := newTwoOfThree(t)
	inner := m.Inner()
	calls := m.CallBuilder()
	calls.AddCall(txbuilder.NewCallBuilding(remark("c1")))

	require.NoError(t, m.UpdateSelectedSignatory(vaultSigner))
	require.NoError(t, m.UpdateSelectedSignatory(vaultSigner))

	assert.Same(t, inner, m.Inner())
	assert.Same(t, calls, m.CallBuilder())
	assert.Equal(t, 1, m.CallBuilder().Len())
}

func TestMultisig_SwitchingSignatoryCarriesCalls(t *testing.T) {
	m := newTwoOfThree(t)
	old := m.Inner()
	m.CallBuilder().AddCall(txbuilder.NewCallBuilding(remark("c1")))
	m.CallBuilder().AddCall(txbuilder.NewCallBuilding(remark("c2")))

	require.NoError(t, m.UpdateSelectedSignatory(novaSigner))

	selected, ok := m.SelectedSignatory()
	require.True(t, ok)
	assert.Equal(t, novaSigner, selected)
	assert.NotSame(t, old, m.Inner())
	assert.Equal(t, []domain.Call{remark("c1"), remark("c2")}, probes(m.CallBuilder().CurrentCalls()))
}

func TestMultisig_UnknownSignatory(t *testing.T) {
	m := newTwoOfThree(t)
	stranger := domain.AccountInWallet{
		Wallet:  wallet(9, domain.WalletTypeNovaWallet),
		Account: baseAccount(90, 9, 0xc3),
	}

	err := m.UpdateSelectedSignatory(stranger)
	assert.ErrorIs(t, err, txbuilder.ErrUnknownSignatory)

	selected, _ := m.SelectedSignatory()
	assert.Equal(t, vaultSigner, selected)
}

func TestMultisig_WithoutKnownSignatories(t *testing.T) {
	m, err := txbuilder.NewMultisig(westend, twoOfThree, nil, leafFactory(westend))
	require.NoError(t, err)

	assert.False(t, m.HasSigner())
	assert.Nil(t, m.Inner())
	require.NotNil(t, m.CallBuilder())

	m.CallBuilder().AddCall(txbuilder.NewCallBuilding(remark("x")))
	_, ok := m.SubmittableExtrinsic()
	assert.False(t, ok)

	_, err = m.UnsignedTransaction(domain.TxOptions{}, domain.TxInfo{})
	assert.ErrorIs(t, err, txbuilder.ErrNoSigningAccounts)

	var multisigs int
	m.Visit(txbuilder.VisitorFuncs{
		Multisig: func(info txbuilder.MultisigInfo) {
			multisigs++
			assert.Nil(t, info.SelectedSignatory)
		},
		Leaf: func(txbuilder.LeafInfo) { t.Fatal("no leaf expected") },
	})
	assert.Equal(t, 1, multisigs)
}

func TestMultisig_WrapsCallInAsMulti(t *testing.T) {
	m := newTwoOfThree(t)
	m.CallBuilder().SetCall(txbuilder.NewCallBuilding(transfer(10)))

	want := domain.AsMulti(transfer(10), 2, []domain.AccountID{accountID(0xb2), accountID(0xc3)})

	probe, ok := m.SubmittableExtrinsic()
	require.True(t, ok)
	assert.Equal(t, want, probe)

	tx, err := m.UnsignedTransaction(domain.TxOptions{}, domain.TxInfo{Address: "5A"})
	require.NoError(t, err)
	assert.Equal(t, want, tx.Call)

	require.NoError(t, m.UpdateSelectedSignatory(novaSigner))
	probe, ok = m.SubmittableExtrinsic()
	require.True(t, ok)
	assert.Equal(t,
		domain.AsMulti(transfer(10), 2, []domain.AccountID{accountID(0xa1), accountID(0xc3)}),
		probe)
}

func TestMultisig_VisitorCanSwitchSignatory(t *testing.T) {
	m := newTwoOfThree(t)

	var leaf domain.AccountInWallet
	txbuilder.Visit(m, txbuilder.VisitorFuncs{
		Multisig: func(info txbuilder.MultisigInfo) {
			require.NoError(t, info.UpdateSelectedSignatory(novaSigner))
		},
		Leaf: func(info txbuilder.LeafInfo) { leaf = info.Account },
	})

	assert.Equal(t, novaSigner, leaf)
}
