package txbuilder

import (
	"context"
	"fmt"
	"math/big"

	"tx-composer/internal/core/domain"
)

// FeeQuerier estimates the fee of a call submitted from address.
type FeeQuerier interface {
	PaymentInfo(ctx context.Context, call domain.Call, address string) (*big.Int, error)
}

// DepositQuerier reads the multisig deposit constants of the chain.
type DepositQuerier interface {
	MultisigDepositConstants(ctx context.Context) (domain.MultisigDeposit, error)
}

// GetTransactionFee queries the fee once, with the first signer as the
// representative, and charges it to every signer.
func GetTransactionFee(ctx context.Context, b Builder, q FeeQuerier) (domain.AmountReduction, error) {
	signers, err := RequireSigningAccounts(b)
	if err != nil {
		return domain.AmountReduction{}, err
	}

	call, ok := b.SubmittableExtrinsic()
	if !ok {
		return domain.AmountReduction{}, ErrNoCalls
	}

	address, err := Address(b.Chain(), signers.Accounts[0].AccountID)
	if err != nil {
		return domain.AmountReduction{}, err
	}

	fee, err := q.PaymentInfo(ctx, call, address)
	if err != nil {
		return domain.AmountReduction{}, fmt.Errorf("payment info for %s: %w", address, err)
	}

	reduction := domain.NewAmountReductionBuilder()
	for _, a := range signers.Accounts {
		reduction.AddReductionAmount(a.AccountID, fee)
	}
	return reduction.Build(), nil
}

// GetDeposits charges the multisig deposit of every multisig on the active
// path to that multisig's selected signatory.
func GetDeposits(ctx context.Context, b Builder, q DepositQuerier) (domain.AmountReduction, error) {
	type payer struct {
		accountID domain.AccountID
		threshold int
	}
	var payers []payer

	Visit(b, VisitorFuncs{
		Multisig: func(info MultisigInfo) {
			if info.SelectedSignatory == nil {
				return
			}
			payers = append(payers, payer{
				accountID: info.SelectedSignatory.Account.AccountID,
				threshold: info.Threshold,
			})
		},
	})

	reduction := domain.NewAmountReductionBuilder()
	if len(payers) == 0 {
		return reduction.Build(), nil
	}

	constants, err := q.MultisigDepositConstants(ctx)
	if err != nil {
		return domain.AmountReduction{}, fmt.Errorf("multisig deposit constants: %w", err)
	}

	for _, p := range payers {
		reduction.AddReductionAmount(p.accountID, constants.For(p.threshold))
	}
	return reduction.Build(), nil
}
