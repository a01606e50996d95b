package postgres

import (
	"context"
	"errors"
	"fmt"

	"tx-composer/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// OperatorRepo implements ports.OperatorRepository over the operators table:
//
//	operators(id bigint, username text unique, password_hash text, status text, created_at timestamptz)
type OperatorRepo struct {
	pool Pool
}

// NewOperatorRepo creates a new OperatorRepo.
func NewOperatorRepo(pool Pool) *OperatorRepo {
	return &OperatorRepo{pool: pool}
}

// GetByUsername fetches an operator by username.
func (r *OperatorRepo) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `SELECT id, username, password_hash, status, created_at
		FROM operators WHERE username = $1`

	o := &domain.Operator{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&o.ID, &o.Username, &o.PasswordHash, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operator by username: %w", err)
	}
	return o, nil
}
