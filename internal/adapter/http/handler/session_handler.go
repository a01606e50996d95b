package handler

import (
	"context"

	"tx-composer/internal/adapter/http/dto"
	"tx-composer/internal/adapter/http/middleware"
	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/ports"
	"tx-composer/pkg/apperror"
	"tx-composer/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler exposes signing sessions to the operator UI.
type SessionHandler struct {
	svc   ports.SigningSessionService
	chain domain.Chain
}

// NewSessionHandler creates a new SessionHandler. Amounts are rendered at
// chain's precision.
func NewSessionHandler(svc ports.SigningSessionService, chain domain.Chain) *SessionHandler {
	return &SessionHandler{svc: svc, chain: chain}
}

// sessionRef reads the :id path parameter for the authenticated operator.
func sessionRef(c *gin.Context) (ports.SessionRef, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid session id"))
		return ports.SessionRef{}, false
	}
	return ports.SessionRef{ID: id, Owner: middleware.Subject(c)}, true
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

// Open handles POST /api/v1/sessions.
func (h *SessionHandler) Open(c *gin.Context) {
	var req dto.OpenSessionRequest
	if !bind(c, &req) {
		return
	}

	view, err := h.svc.OpenSession(c.Request.Context(), ports.OpenSessionRequest{
		Owner:      middleware.Subject(c),
		WalletID:   req.WalletID,
		AccountIDs: req.AccountIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// Get handles GET /api/v1/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	view, err := h.svc.GetSession(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// Close handles DELETE /api/v1/sessions/:id.
func (h *SessionHandler) Close(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	if err := h.svc.CloseSession(c.Request.Context(), ref); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SetCalls handles PUT /api/v1/sessions/:id/calls.
func (h *SessionHandler) SetCalls(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	var req dto.SetCallsRequest
	if !bind(c, &req) {
		return
	}

	view, err := h.svc.SetCalls(c.Request.Context(), ports.SetCallsRequest{
		Ref:   ref,
		Mode:  ports.CallsMode(req.Mode),
		Calls: dto.Calls(req.Calls),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// SelectSignatory handles PUT /api/v1/sessions/:id/signatory.
func (h *SessionHandler) SelectSignatory(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	var req dto.SelectSignatoryRequest
	if !bind(c, &req) {
		return
	}
	multisig, err := dto.ParseAccountID(req.MultisigAccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid multisig_account_id"))
		return
	}

	view, err := h.svc.SelectSignatory(c.Request.Context(), ports.SelectSignatoryRequest{
		Ref:                ref,
		MultisigAccountID:  multisig,
		SignatoryWalletID:  req.WalletID,
		SignatoryAccountID: req.AccountID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// SelectShard handles PUT /api/v1/sessions/:id/shard.
func (h *SessionHandler) SelectShard(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	var req dto.SelectShardRequest
	if !bind(c, &req) {
		return
	}

	view, err := h.svc.SelectShard(c.Request.Context(), ports.SelectShardRequest{
		Ref:      ref,
		WalletID: req.WalletID,
		ShardID:  req.ShardID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// Signers handles GET /api/v1/sessions/:id/signers.
func (h *SessionHandler) Signers(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	signers, err := h.svc.SigningAccounts(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SignersResponse{Signers: signers})
}

// Fee handles GET /api/v1/sessions/:id/fee.
func (h *SessionHandler) Fee(c *gin.Context) {
	h.reduction(c, h.svc.Fee)
}

// Deposits handles GET /api/v1/sessions/:id/deposits.
func (h *SessionHandler) Deposits(c *gin.Context) {
	h.reduction(c, h.svc.Deposits)
}

func (h *SessionHandler) reduction(c *gin.Context, get func(context.Context, ports.SessionRef) (domain.AmountReduction, error)) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	r, err := get(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}
	out, err := dto.NewReduction(h.chain, r)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, out)
}

// Estimate handles GET /api/v1/sessions/:id/estimate.
func (h *SessionHandler) Estimate(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	est, err := h.svc.Estimate(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}

	fee, err := dto.NewReduction(h.chain, est.Fee)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	deposits, err := dto.NewReduction(h.chain, est.Deposits)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.EstimateResponse{Fee: fee, Deposits: deposits})
}

// Unsigned handles POST /api/v1/sessions/:id/unsigned.
func (h *SessionHandler) Unsigned(c *gin.Context) {
	ref, ok := sessionRef(c)
	if !ok {
		return
	}
	txs, err := h.svc.UnsignedTransactions(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.UnsignedTransactionsResponse{Transactions: txs})
}
