package dto

import (
	"math/big"
	"testing"

	"tx-composer/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var westend = domain.Chain{
	ChainID:        "0xe143f23803ac50e8f6f8e62695d1ce9e4e1d68aa36c1cd2cfd15340213f3423e",
	Name:           "Westend",
	AddressPrefix:  42,
	AssetSymbol:    "WND",
	AssetPrecision: 12,
}

func TestNewAmount(t *testing.T) {
	tests := []struct {
		planck *big.Int
		want   string
	}{
		{big.NewInt(1_500_000_000_000), "1.5"},
		{big.NewInt(1020), "0.00000000102"},
		{big.NewInt(0), "0"},
		{nil, "0"},
	}
	for _, tt := range tests {
		got := NewAmount(westend, tt.planck)
		assert.Equal(t, tt.want, got.Value)
		assert.Equal(t, "WND", got.Symbol)
	}

	huge, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	assert.Equal(t, "340282366920938463463374607431768211455", NewAmount(westend, huge).Planck)
}

func TestNewReduction(t *testing.T) {
	alice := domain.MustParseAccountID(aliceHex)
	r := domain.NewAmountReductionBuilder().
		AddReductionAmount(alice, big.NewInt(1000)).
		AddReductionAmount(alice, big.NewInt(20)).
		Build()

	got, err := NewReduction(westend, r)
	require.NoError(t, err)

	assert.Equal(t, "1020", got.Total.Planck)
	require.Len(t, got.Accounts, 1)
	assert.Equal(t, alice, got.Accounts[0].AccountID)
	assert.Equal(t, aliceAddress, got.Accounts[0].Address)
	assert.Equal(t, "0.00000000102", got.Accounts[0].Amount.Value)
}

func TestNewReduction_Empty(t *testing.T) {
	got, err := NewReduction(westend, domain.AmountReduction{})
	require.NoError(t, err)
	assert.Equal(t, "0", got.Total.Planck)
	assert.Empty(t, got.Accounts)
}

func TestCalls(t *testing.T) {
	got := Calls([]CallRequest{{Section: "system", Method: "remark", Args: map[string]any{"remark": "0x00"}}})
	assert.Equal(t, []domain.Call{{Section: "system", Method: "remark", Args: map[string]any{"remark": "0x00"}}}, got)
}
