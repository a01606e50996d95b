package domain

import "time"

// OperatorStatus of an API operator.
type OperatorStatus string

const (
	OperatorStatusActive   OperatorStatus = "ACTIVE"
	OperatorStatusDisabled OperatorStatus = "DISABLED"
)

// Operator is a user allowed to open signing sessions. The username is the
// JWT subject and owns the sessions it opens.
type Operator struct {
	ID           int64          `json:"id"`
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"`
	Status       OperatorStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// IsActive returns true if the operator may log in.
func (o *Operator) IsActive() bool {
	return o.Status == OperatorStatusActive
}
