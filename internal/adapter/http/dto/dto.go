package dto

import (
	"math/big"
	"strings"
	"time"

	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/ports"
	"tx-composer/internal/core/txbuilder"

	"github.com/shopspring/decimal"
)

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64,safe_id"`
	Password string `json:"password" binding:"required,max=128" sanitize:"-"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	Expiry    int64  `json:"expiry"` // Unix timestamp
}

// NewLoginResponse wraps a bearer token expiring at expiry.
func NewLoginResponse(token string, expiry time.Time) LoginResponse {
	return LoginResponse{Token: token, TokenType: "Bearer", Expiry: expiry.Unix()}
}

// OpenSessionRequest is the request body for POST /sessions.
type OpenSessionRequest struct {
	WalletID   int64   `json:"wallet_id" binding:"required,gt=0"`
	AccountIDs []int64 `json:"account_ids,omitempty" binding:"omitempty,max=100,dive,gt=0"`
}

// CallRequest is one runtime call.
type CallRequest struct {
	Section string         `json:"section" binding:"required,pallet_name"`
	Method  string         `json:"method" binding:"required,pallet_name"`
	Args    map[string]any `json:"args,omitempty"`
}

// SetCallsRequest is the request body for PUT /sessions/:id/calls.
type SetCallsRequest struct {
	Mode  string        `json:"mode" binding:"required,oneof=ADD SET RESET"`
	Calls []CallRequest `json:"calls" binding:"omitempty,max=64,dive"`
}

// SelectSignatoryRequest is the request body for PUT /sessions/:id/signatory.
type SelectSignatoryRequest struct {
	MultisigAccountID string `json:"multisig_account_id" binding:"required,account_id"`
	WalletID          int64  `json:"wallet_id" binding:"required,gt=0"`
	AccountID         int64  `json:"account_id" binding:"required,gt=0"`
}

// SelectShardRequest is the request body for PUT /sessions/:id/shard.
type SelectShardRequest struct {
	WalletID int64 `json:"wallet_id" binding:"required,gt=0"`
	ShardID  int64 `json:"shard_id" binding:"required,gt=0"`
}

// Amount is a balance in planck plus its value in whole tokens.
type Amount struct {
	Planck string `json:"planck"`
	Value  string `json:"value"`
	Symbol string `json:"symbol"`
}

// AccountAmount is the share of a reduction charged to one account.
type AccountAmount struct {
	AccountID domain.AccountID `json:"account_id"`
	Address   string           `json:"address"`
	Amount    Amount           `json:"amount"`
}

// ReductionResponse is an aggregated fee or deposit.
type ReductionResponse struct {
	Total    Amount          `json:"total"`
	Accounts []AccountAmount `json:"accounts"`
}

// EstimateResponse bundles fee and deposits.
type EstimateResponse struct {
	Fee      ReductionResponse `json:"fee"`
	Deposits ReductionResponse `json:"deposits"`
}

// UnsignedTransactionsResponse lists one payload per signer.
type UnsignedTransactionsResponse struct {
	Transactions []*domain.UnsignedTransaction `json:"transactions"`
}

// SignersResponse lists the resolved signers.
type SignersResponse struct {
	Signers []ports.Signer `json:"signers"`
}

// Calls converts request calls to domain calls.
func Calls(in []CallRequest) []domain.Call {
	out := make([]domain.Call, len(in))
	for i, c := range in {
		out[i] = domain.Call{Section: c.Section, Method: c.Method, Args: c.Args}
	}
	return out
}

// NewAmount formats planck at the chain's precision.
func NewAmount(chain domain.Chain, planck *big.Int) Amount {
	if planck == nil {
		planck = new(big.Int)
	}
	return Amount{
		Planck: planck.String(),
		Value:  decimal.NewFromBigInt(planck, -chain.AssetPrecision).String(),
		Symbol: chain.AssetSymbol,
	}
}

// NewReduction renders r with per-account addresses.
func NewReduction(chain domain.Chain, r domain.AmountReduction) (ReductionResponse, error) {
	ids := r.AccountIDs()
	out := ReductionResponse{
		Total:    NewAmount(chain, r.Total()),
		Accounts: make([]AccountAmount, 0, len(ids)),
	}
	for _, id := range ids {
		amount, _ := r.Get(id)
		addr, err := txbuilder.Address(chain, id)
		if err != nil {
			return ReductionResponse{}, err
		}
		out.Accounts = append(out.Accounts, AccountAmount{
			AccountID: id,
			Address:   addr,
			Amount:    NewAmount(chain, amount),
		})
	}
	return out, nil
}

// ParseAccountID accepts a 0x-prefixed hex account id or an SS58 address.
func ParseAccountID(s string) (domain.AccountID, error) {
	if strings.HasPrefix(s, "0x") {
		return domain.ParseAccountID(s)
	}
	return accountIDFromAddress(s)
}
