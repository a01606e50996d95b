package txbuilder_test

import (
	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/txbuilder"
)

var westend = domain.Chain{
	ChainID:        "0xe143f23803ac50e8f6f8e62695d1ce9e4e1d68aa36c1cd2cfd15340213f3423e",
	Name:           "Westend",
	AddressPrefix:  42,
	AssetSymbol:    "WND",
	AssetPrecision: 12,
}

func accountID(b byte) domain.AccountID {
	var id domain.AccountID
	for i := range id {
		id[i] = b
	}
	return id
}

func wallet(id int64, typ domain.WalletType) domain.Wallet {
	return domain.Wallet{ID: id, Name: string(typ), Type: typ}
}

func baseAccount(id, walletID int64, key byte) domain.Account {
	return domain.Account{
		ID:        id,
		WalletID:  walletID,
		AccountID: accountID(key),
		Type:      domain.AccountTypeBase,
	}
}

func multisigAccount(id, walletID int64, key byte, threshold int, signatories ...byte) domain.Account {
	ids := make([]domain.AccountID, len(signatories))
	for i, s := range signatories {
		ids[i] = accountID(s)
	}
	return domain.Account{
		ID:          id,
		WalletID:    walletID,
		AccountID:   accountID(key),
		Type:        domain.AccountTypeMultisig,
		Threshold:   threshold,
		Signatories: ids,
	}
}

func remark(text string) domain.Call {
	return domain.Call{Section: "system", Method: "remark", Args: map[string]any{"remark": text}}
}

func transfer(amount int64) domain.Call {
	return domain.Call{Section: "balances", Method: "transferKeepAlive", Args: map[string]any{"value": amount}}
}

func leafFactory(chain domain.Chain) txbuilder.CreateInner {
	return func(a domain.AccountInWallet) (txbuilder.Builder, error) {
		return txbuilder.NewLeaf(chain, a), nil
	}
}

func address(id domain.AccountID) string {
	addr, err := txbuilder.Address(westend, id)
	if err != nil {
		panic(err)
	}
	return addr
}
