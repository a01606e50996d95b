package domain

import "math/big"

// Chain describes the network a signing session targets.
type Chain struct {
	ChainID        string `json:"chain_id"`
	Name           string `json:"name"`
	AddressPrefix  uint16 `json:"address_prefix"`
	AssetSymbol    string `json:"asset_symbol"`
	AssetPrecision int32  `json:"asset_precision"`
}

// MultisigDeposit holds the multisig pallet constants reserved when a
// signatory opens a new multisig operation.
type MultisigDeposit struct {
	Base   *big.Int `json:"deposit_base"`
	Factor *big.Int `json:"deposit_factor"`
}

// For returns Base + Factor*threshold.
func (d MultisigDeposit) For(threshold int) *big.Int {
	total := new(big.Int)
	if d.Base != nil {
		total.Add(total, d.Base)
	}
	if d.Factor != nil {
		total.Add(total, new(big.Int).Mul(d.Factor, big.NewInt(int64(threshold))))
	}
	return total
}
