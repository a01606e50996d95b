package postgres

import (
	"context"
	"fmt"

	"tx-composer/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository over the accounts table:
//
//	accounts(id bigint, wallet_id bigint, account_id bytea, chain_id text null,
//	         name text, type text, threshold int, signatories bytea[])
//
// A NULL chain_id marks an account valid on every chain.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `id, wallet_id, account_id, COALESCE(chain_id, ''), name, type,
	COALESCE(threshold, 0), COALESCE(signatories, '{}')`

// ListByWallet returns the accounts of walletID usable on chainID, ordered by id.
func (r *AccountRepo) ListByWallet(ctx context.Context, walletID int64, chainID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE wallet_id = $1 AND (chain_id IS NULL OR chain_id = $2)
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, walletID, chainID)
	if err != nil {
		return nil, fmt.Errorf("list accounts by wallet: %w", err)
	}
	return collectAccounts(rows)
}

// ListByChain returns every account usable on chainID, ordered by wallet then id.
func (r *AccountRepo) ListByChain(ctx context.Context, chainID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE chain_id IS NULL OR chain_id = $1
		ORDER BY wallet_id, id`

	rows, err := r.pool.Query(ctx, query, chainID)
	if err != nil {
		return nil, fmt.Errorf("list accounts by chain: %w", err)
	}
	return collectAccounts(rows)
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var (
		a           domain.Account
		rawID       []byte
		signatories [][]byte
	)
	if err := row.Scan(&a.ID, &a.WalletID, &rawID, &a.ChainID, &a.Name, &a.Type,
		&a.Threshold, &signatories); err != nil {
		return domain.Account{}, fmt.Errorf("scan account: %w", err)
	}

	id, err := toAccountID(rawID)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %d: %w", a.ID, err)
	}
	a.AccountID = id

	if len(signatories) > 0 {
		a.Signatories = make([]domain.AccountID, len(signatories))
		for i, raw := range signatories {
			if a.Signatories[i], err = toAccountID(raw); err != nil {
				return domain.Account{}, fmt.Errorf("account %d signatory %d: %w", a.ID, i, err)
			}
		}
	}
	return a, nil
}

func toAccountID(raw []byte) (domain.AccountID, error) {
	var id domain.AccountID
	if len(raw) != len(id) {
		return id, fmt.Errorf("account id has %d bytes, want %d", len(raw), len(id))
	}
	copy(id[:], raw)
	return id, nil
}
