package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"tx-composer/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorRepo_GetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, username, password_hash, status, created_at FROM operators WHERE username").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "status", "created_at"}).
			AddRow(int64(7), "alice", "$argon2id$hash", "ACTIVE", created))

	op, err := NewOperatorRepo(mock).GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, op)
	assert.Equal(t, &domain.Operator{
		ID: 7, Username: "alice", PasswordHash: "$argon2id$hash",
		Status: domain.OperatorStatusActive, CreatedAt: created,
	}, op)
	assert.True(t, op.IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperatorRepo_GetByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM operators").WithArgs("ghost").WillReturnError(pgx.ErrNoRows)

	op, err := NewOperatorRepo(mock).GetByUsername(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, op)
}

func TestOperatorRepo_GetByUsername_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM operators").WithArgs("alice").WillReturnError(errors.New("conn reset"))

	_, err = NewOperatorRepo(mock).GetByUsername(context.Background(), "alice")
	assert.ErrorContains(t, err, "get operator by username")
}
