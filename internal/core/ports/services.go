package ports

import (
	"context"
	"time"

	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/txbuilder"

	"github.com/google/uuid"
)

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// HashService handles password hashing.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// AuthService exchanges operator credentials for a JWT.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

// --- Service Ports (Business Logic) ---

// SigningSessionService drives the transaction builder tree for the UI.
type SigningSessionService interface {
	OpenSession(ctx context.Context, req OpenSessionRequest) (*SessionView, error)
	GetSession(ctx context.Context, ref SessionRef) (*SessionView, error)
	CloseSession(ctx context.Context, ref SessionRef) error
	SetCalls(ctx context.Context, req SetCallsRequest) (*SessionView, error)
	SelectSignatory(ctx context.Context, req SelectSignatoryRequest) (*SessionView, error)
	SelectShard(ctx context.Context, req SelectShardRequest) (*SessionView, error)
	SigningAccounts(ctx context.Context, ref SessionRef) ([]Signer, error)
	Fee(ctx context.Context, ref SessionRef) (domain.AmountReduction, error)
	Deposits(ctx context.Context, ref SessionRef) (domain.AmountReduction, error)
	Estimate(ctx context.Context, ref SessionRef) (*Estimate, error)
	UnsignedTransactions(ctx context.Context, ref SessionRef) ([]*domain.UnsignedTransaction, error)
}

// SessionRef addresses a session on behalf of its owner.
type SessionRef struct {
	ID    uuid.UUID
	Owner string
}

// OpenSessionRequest starts a signing flow. Empty AccountIDs selects every
// account of the wallet on the configured chain.
type OpenSessionRequest struct {
	Owner      string
	WalletID   int64
	AccountIDs []int64
}

// CallsMode selects how SetCalls changes the active call builder.
type CallsMode string

const (
	CallsModeAdd   CallsMode = "ADD"
	CallsModeSet   CallsMode = "SET"
	CallsModeReset CallsMode = "RESET"
)

// SetCallsRequest edits the calls of the active signer.
type SetCallsRequest struct {
	Ref   SessionRef
	Mode  CallsMode
	Calls []domain.Call
}

// SelectSignatoryRequest switches the signatory of the multisig identified
// by MultisigAccountID.
type SelectSignatoryRequest struct {
	Ref                SessionRef
	MultisigAccountID  domain.AccountID
	SignatoryWalletID  int64
	SignatoryAccountID int64
}

// SelectShardRequest switches the active shard of a compound wallet.
type SelectShardRequest struct {
	Ref      SessionRef
	WalletID int64
	ShardID  int64
}

// SessionView is what the UI sees of a session.
type SessionView struct {
	ID        uuid.UUID       `json:"id"`
	Chain     domain.Chain    `json:"chain"`
	Shape     txbuilder.Shape `json:"shape"`
	Calls     []domain.Call   `json:"calls"`
	CreatedAt time.Time       `json:"created_at"`
}

// Signer is one resolved signing account.
type Signer struct {
	Wallet  domain.Wallet  `json:"wallet"`
	Account domain.Account `json:"account"`
	Address string         `json:"address"`
}

// Estimate bundles fee and deposit reductions.
type Estimate struct {
	Fee      domain.AmountReduction
	Deposits domain.AmountReduction
}
