package txbuilder

import "errors"

var (
	// ErrEmptyShardList is returned when a compound wallet has no shards.
	ErrEmptyShardList = errors.New("compound wallet has no shards")
	// ErrSigningNotAllowed is returned when a wallet that cannot sign is asked to.
	ErrSigningNotAllowed = errors.New("wallet is not allowed to sign")
	// ErrNoSigningAccounts is returned when the tree resolves to no signer.
	ErrNoSigningAccounts = errors.New("no signing accounts found")
	// ErrNoCalls is returned when the active signer has no call configured.
	ErrNoCalls = errors.New("no call configured")
	// ErrUnknownSignatory is returned when selecting a signatory the multisig does not know.
	ErrUnknownSignatory = errors.New("signatory is not a known signer of the multisig")
	// ErrUnknownShard is returned when selecting an account outside the compound wallet.
	ErrUnknownShard = errors.New("shard does not belong to the compound wallet")
	// ErrSignatoryCycle is returned when a multisig is, transitively, its own signatory.
	ErrSignatoryCycle = errors.New("multisig signatory cycle")
)
