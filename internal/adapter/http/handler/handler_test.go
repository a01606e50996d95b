package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/ports"
	"tx-composer/internal/core/ports/mocks"
	"tx-composer/internal/core/txbuilder"
	"tx-composer/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	aliceHex     = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	aliceAddress = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
)

var westend = domain.Chain{
	ChainID:        "0xe143f23803ac50e8f6f8e62695d1ce9e4e1d68aa36c1cd2cfd15340213f3423e",
	Name:           "Westend",
	AddressPrefix:  42,
	AssetSymbol:    "WND",
	AssetPrecision: 12,
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
}

type routerTest struct {
	sessions *mocks.MockSigningSessionService
	auth     *mocks.MockAuthService
	health   *mocks.MockHealthChecker
	router   *gin.Engine
}

func newRouterTest(t *testing.T) *routerTest {
	ctrl := gomock.NewController(t)
	rt := &routerTest{
		sessions: mocks.NewMockSigningSessionService(ctrl),
		auth:     mocks.NewMockAuthService(ctrl),
		health:   mocks.NewMockHealthChecker(ctrl),
	}
	tokens := mocks.NewMockTokenService(ctrl)
	tokens.EXPECT().Validate("good").Return(&ports.TokenClaims{Subject: "alice"}, nil).AnyTimes()

	rt.router = SetupRouter(RouterDeps{
		AuthSvc:        rt.auth,
		SessionSvc:     rt.sessions,
		TokenSvc:       tokens,
		Chain:          westend,
		HealthCheckers: []ports.HealthChecker{rt.health},
		Logger:         zerolog.Nop(),
	})
	return rt
}

func (rt *routerTest) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	rt.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func sessionView(id uuid.UUID) *ports.SessionView {
	return &ports.SessionView{
		ID:        id,
		Chain:     westend,
		Shape:     txbuilder.Shape{Kind: txbuilder.NodeKindLeaf},
		CreatedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

// --- Auth ---

func TestLogin_Success(t *testing.T) {
	rt := newRouterTest(t)
	expiry := time.Unix(1_800_000_000, 0)
	rt.auth.EXPECT().Login(gomock.Any(), "alice", "s3cret").Return("jwt", expiry, nil)

	w, env := rt.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "alice", "password": "s3cret"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"jwt","token_type":"Bearer","expiry":1800000000}`, string(env.Data))
}

func TestLogin_ValidationError(t *testing.T) {
	rt := newRouterTest(t)

	w, env := rt.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", env.ErrorCode)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	rt := newRouterTest(t)
	rt.auth.EXPECT().Login(gomock.Any(), "alice", "nope").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	w, env := rt.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "alice", "password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_002", env.ErrorCode)
}

// --- Sessions ---

func TestOpenSession(t *testing.T) {
	rt := newRouterTest(t)
	id := uuid.New()
	rt.sessions.EXPECT().OpenSession(gomock.Any(), ports.OpenSessionRequest{
		Owner: "alice", WalletID: 5, AccountIDs: []int64{51, 52},
	}).Return(sessionView(id), nil)

	w, env := rt.do(t, http.MethodPost, "/api/v1/sessions", map[string]any{"wallet_id": 5, "account_ids": []int64{51, 52}})

	assert.Equal(t, http.StatusCreated, w.Code)
	var view ports.SessionView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, id, view.ID)
	assert.Equal(t, txbuilder.NodeKindLeaf, view.Shape.Kind)
}

func TestOpenSession_RequiresToken(t *testing.T) {
	rt := newRouterTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader([]byte(`{"wallet_id":1}`)))
	w := httptest.NewRecorder()
	rt.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_001")
}

func TestOpenSession_ServiceError(t *testing.T) {
	rt := newRouterTest(t)
	rt.sessions.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrSigningNotAllowed())

	w, env := rt.do(t, http.MethodPost, "/api/v1/sessions", map[string]any{"wallet_id": 6})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SIGN_001", env.ErrorCode)
}

func TestGetSession(t *testing.T) {
	rt := newRouterTest(t)
	id := uuid.New()
	rt.sessions.EXPECT().GetSession(gomock.Any(), ports.SessionRef{ID: id, Owner: "alice"}).Return(sessionView(id), nil)

	w, _ := rt.do(t, http.MethodGet, "/api/v1/sessions/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetSession_BadID(t *testing.T) {
	rt := newRouterTest(t)

	w, env := rt.do(t, http.MethodGet, "/api/v1/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", env.ErrorCode)
}

func TestGetSession_NotFound(t *testing.T) {
	rt := newRouterTest(t)
	rt.sessions.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrSessionNotFound())

	w, env := rt.do(t, http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SESS_001", env.ErrorCode)
}

func TestCloseSession(t *testing.T) {
	rt := newRouterTest(t)
	id := uuid.New()
	rt.sessions.EXPECT().CloseSession(gomock.Any(), ports.SessionRef{ID: id, Owner: "alice"}).Return(nil)

	w, _ := rt.do(t, http.MethodDelete, "/api/v1/sessions/"+id.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSetCalls(t *testing.T) {
	rt := newRouterTest(t)
	id := uuid.New()
	rt.sessions.EXPECT().SetCalls(gomock.Any(), ports.SetCallsRequest{
		Ref:   ports.SessionRef{ID: id, Owner: "alice"},
		Mode:  ports.CallsModeSet,
		Calls: []domain.Call{{Section: "system", Method: "remark", Args: map[string]any{"remark": "hi"}}},
	}).Return(sessionView(id), nil)

	w, _ := rt.do(t, http.MethodPut, "/api/v1/sessions/"+id.String()+"/calls", map[string]any{
		"mode":  "SET",
		"calls": []map[string]any{{"section": "system", "method": "remark", "args": map[string]any{"remark": "hi"}}},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetCalls_InvalidMode(t *testing.T) {
	rt := newRouterTest(t)

	w, env := rt.do(t, http.MethodPut, "/api/v1/sessions/"+uuid.NewString()+"/calls", map[string]any{"mode": "MERGE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", env.ErrorCode)
}

func TestSelectSignatory_AcceptsAddress(t *testing.T) {
	rt := newRouterTest(t)
	id := uuid.New()
	rt.sessions.EXPECT().SelectSignatory(gomock.Any(), ports.SelectSignatoryRequest{
		Ref:                ports.SessionRef{ID: id, Owner: "alice"},
		MultisigAccountID:  domain.MustParseAccountID(aliceHex),
		SignatoryWalletID:  2,
		SignatoryAccountID: 20,
	}).Return(sessionView(id), nil)

	w, _ := rt.do(t, http.MethodPut, "/api/v1/sessions/"+id.String()+"/signatory", map[string]any{
		"multisig_account_id": aliceAddress, "wallet_id": 2, "account_id": 20,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSelectSignatory_UnknownSigner(t *testing.T) {
	rt := newRouterTest(t)
	rt.sessions.EXPECT().SelectSignatory(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrUnknownSigner("signatory is not a known signer of the multisig"))

	w, env := rt.do(t, http.MethodPut, "/api/v1/sessions/"+uuid.NewString()+"/signatory", map[string]any{
		"multisig_account_id": aliceHex, "wallet_id": 9, "account_id": 90,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SIGN_004", env.ErrorCode)
}

func TestSelectShard(t *testing.T) {
	rt := newRouterTest(t)
	id := uuid.New()
	rt.sessions.EXPECT().SelectShard(gomock.Any(), ports.SelectShardRequest{
		Ref: ports.SessionRef{ID: id, Owner: "alice"}, WalletID: 5, ShardID: 52,
	}).Return(sessionView(id), nil)

	w, _ := rt.do(t, http.MethodPut, "/api/v1/sessions/"+id.String()+"/shard", map[string]any{"wallet_id": 5, "shard_id": 52})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSigners(t *testing.T) {
	rt := newRouterTest(t)
	signer := ports.Signer{
		Wallet:  domain.Wallet{ID: 1, Name: "Vault", Type: domain.WalletTypePolkadotVault},
		Account: domain.Account{ID: 10, WalletID: 1, AccountID: domain.MustParseAccountID(aliceHex)},
		Address: aliceAddress,
	}
	rt.sessions.EXPECT().SigningAccounts(gomock.Any(), gomock.Any()).Return([]ports.Signer{signer}, nil)

	w, env := rt.do(t, http.MethodGet, "/api/v1/sessions/"+uuid.NewString()+"/signers", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), aliceAddress)
}

func reduction(amount int64) domain.AmountReduction {
	return domain.NewAmountReductionBuilder().
		AddReductionAmount(domain.MustParseAccountID(aliceHex), big.NewInt(amount)).
		Build()
}

func TestFee_FormatsAmounts(t *testing.T) {
	rt := newRouterTest(t)
	rt.sessions.EXPECT().Fee(gomock.Any(), gomock.Any()).Return(reduction(1_500_000_000_000), nil)

	w, env := rt.do(t, http.MethodGet, "/api/v1/sessions/"+uuid.NewString()+"/fee", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total struct {
			Planck string `json:"planck"`
			Value  string `json:"value"`
			Symbol string `json:"symbol"`
		} `json:"total"`
		Accounts []struct {
			Address string `json:"address"`
		} `json:"accounts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "1500000000000", body.Total.Planck)
	assert.Equal(t, "1.5", body.Total.Value)
	assert.Equal(t, "WND", body.Total.Symbol)
	require.Len(t, body.Accounts, 1)
	assert.Equal(t, aliceAddress, body.Accounts[0].Address)
}

func TestDeposits_ChainUnavailable(t *testing.T) {
	rt := newRouterTest(t)
	rt.sessions.EXPECT().Deposits(gomock.Any(), gomock.Any()).Return(domain.AmountReduction{}, apperror.ErrChainUnavailable(errors.New("timeout")))

	w, env := rt.do(t, http.MethodGet, "/api/v1/sessions/"+uuid.NewString()+"/deposits", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "CHAIN_001", env.ErrorCode)
}

func TestEstimate(t *testing.T) {
	rt := newRouterTest(t)
	rt.sessions.EXPECT().Estimate(gomock.Any(), gomock.Any()).
		Return(&ports.Estimate{Fee: reduction(7), Deposits: reduction(1020)}, nil)

	w, env := rt.do(t, http.MethodGet, "/api/v1/sessions/"+uuid.NewString()+"/estimate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"planck":"7"`)
	assert.Contains(t, string(env.Data), `"planck":"1020"`)
}

func TestUnsigned(t *testing.T) {
	rt := newRouterTest(t)
	tx := &domain.UnsignedTransaction{
		Address: aliceAddress,
		ChainID: westend.ChainID,
		Call:    domain.Call{Section: "system", Method: "remark"},
	}
	rt.sessions.EXPECT().UnsignedTransactions(gomock.Any(), gomock.Any()).Return([]*domain.UnsignedTransaction{tx}, nil)

	w, env := rt.do(t, http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/unsigned", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Transactions []domain.UnsignedTransaction `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, aliceAddress, body.Transactions[0].Address)
}

func TestUnsigned_NoCalls(t *testing.T) {
	rt := newRouterTest(t)
	rt.sessions.EXPECT().UnsignedTransactions(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNoCalls())

	w, env := rt.do(t, http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/unsigned", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "SIGN_005", env.ErrorCode)
}

// --- Health & docs ---

func TestHealthCheck(t *testing.T) {
	rt := newRouterTest(t)
	rt.health.EXPECT().Name().Return("sidecar").AnyTimes()
	rt.health.EXPECT().Ping(gomock.Any()).Return(nil)

	w := httptest.NewRecorder()
	rt.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	rt := newRouterTest(t)
	rt.health.EXPECT().Name().Return("sidecar").AnyTimes()
	rt.health.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	w := httptest.NewRecorder()
	rt.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestSwagger(t *testing.T) {
	rt := newRouterTest(t)

	w := httptest.NewRecorder()
	rt.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")

	w = httptest.NewRecorder()
	rt.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/spec", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/sessions/{id}/unsigned")
}
