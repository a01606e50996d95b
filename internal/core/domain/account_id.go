package domain

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// AccountIDLength is the size of a chain-level public identifier.
const AccountIDLength = 32

// AccountID is the raw public key identifying an account on chain.
type AccountID [AccountIDLength]byte

// ParseAccountID decodes a 0x-prefixed (or bare) hex string.
func ParseAccountID(s string) (AccountID, error) {
	var id AccountID
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return id, fmt.Errorf("decode account id: %w", err)
	}
	if len(raw) != AccountIDLength {
		return id, fmt.Errorf("account id must be %d bytes, got %d", AccountIDLength, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

// MustParseAccountID is ParseAccountID that panics on error. Tests only.
func MustParseAccountID(s string) AccountID {
	id, err := ParseAccountID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id AccountID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// IsZero reports whether the id was never set.
func (id AccountID) IsZero() bool {
	return id == AccountID{}
}

func (id AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *AccountID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAccountID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// SortAccountIDs orders ids by their raw bytes, the order the multisig pallet expects.
func SortAccountIDs(ids []AccountID) {
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
}
