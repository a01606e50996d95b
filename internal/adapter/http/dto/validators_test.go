package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aliceHex     = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	aliceAddress = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
)

func TestSanitizeStruct(t *testing.T) {
	req := LoginRequest{Username: "  alice  ", Password: "  spaced secret  "}
	SanitizeStruct(&req)

	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "  spaced secret  ", req.Password)

	SanitizeStruct(req) // non-pointer is a no-op
}

func TestSafeID(t *testing.T) {
	for _, s := range []string{"alice", "ops-team_1", "a.b"} {
		assert.True(t, safeIDRe.MatchString(s), s)
	}
	for _, s := range []string{"", "al ice", "x<y>", "a;DROP", "a\nb"} {
		assert.False(t, safeIDRe.MatchString(s), s)
	}
}

func TestPalletName(t *testing.T) {
	for _, s := range []string{"system", "remark", "transferKeepAlive", "as_multi"} {
		assert.True(t, palletNameRe.MatchString(s), s)
	}
	for _, s := range []string{"", "System", "1abc", "balances.transfer", "a b"} {
		assert.False(t, palletNameRe.MatchString(s), s)
	}
}

func TestParseAccountID(t *testing.T) {
	fromHex, err := ParseAccountID(aliceHex)
	require.NoError(t, err)

	fromAddress, err := ParseAccountID(aliceAddress)
	require.NoError(t, err)
	assert.Equal(t, fromHex, fromAddress)

	for _, s := range []string{"", "0x1234", "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQZ", "not-an-address"} {
		_, err := ParseAccountID(s)
		assert.Error(t, err, s)
	}
}

func TestBindingValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   any
		valid bool
	}{
		{"open session", &OpenSessionRequest{WalletID: 1, AccountIDs: []int64{2, 3}}, true},
		{"open session without wallet", &OpenSessionRequest{}, false},
		{"open session bad account", &OpenSessionRequest{WalletID: 1, AccountIDs: []int64{0}}, false},
		{"set calls", &SetCallsRequest{Mode: "ADD", Calls: []CallRequest{{Section: "system", Method: "remark"}}}, true},
		{"reset without calls", &SetCallsRequest{Mode: "RESET"}, true},
		{"unknown mode", &SetCallsRequest{Mode: "APPEND"}, false},
		{"bad call name", &SetCallsRequest{Mode: "SET", Calls: []CallRequest{{Section: "System", Method: "remark"}}}, false},
		{"signatory by address", &SelectSignatoryRequest{MultisigAccountID: aliceAddress, WalletID: 1, AccountID: 2}, true},
		{"signatory by hex", &SelectSignatoryRequest{MultisigAccountID: aliceHex, WalletID: 1, AccountID: 2}, true},
		{"signatory bad id", &SelectSignatoryRequest{MultisigAccountID: "0xzz", WalletID: 1, AccountID: 2}, false},
		{"shard", &SelectShardRequest{WalletID: 5, ShardID: 51}, true},
		{"login", &LoginRequest{Username: "alice", Password: "pw"}, true},
		{"login unsafe username", &LoginRequest{Username: "alice smith", Password: "pw"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
