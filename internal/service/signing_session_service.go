package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/ports"
	"tx-composer/internal/core/txbuilder"
	"tx-composer/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// SigningSessionServiceImpl implements ports.SigningSessionService.
type SigningSessionServiceImpl struct {
	walletRepo  ports.WalletRepository
	accountRepo ports.AccountRepository
	store       ports.SessionStore
	chainQuery  ports.ChainQuery
	chain       domain.Chain
	log         zerolog.Logger
}

// NewSigningSessionService creates a new SigningSessionServiceImpl for chain.
func NewSigningSessionService(
	walletRepo ports.WalletRepository,
	accountRepo ports.AccountRepository,
	store ports.SessionStore,
	chainQuery ports.ChainQuery,
	chain domain.Chain,
	log zerolog.Logger,
) *SigningSessionServiceImpl {
	return &SigningSessionServiceImpl{
		walletRepo:  walletRepo,
		accountRepo: accountRepo,
		store:       store,
		chainQuery:  chainQuery,
		chain:       chain,
		log:         log,
	}
}

// OpenSession loads the wallet directory, builds the tree for the active
// wallet and accounts and stores it as a new session.
func (s *SigningSessionServiceImpl) OpenSession(ctx context.Context, req ports.OpenSessionRequest) (*ports.SessionView, error) {
	if req.Owner == "" {
		return nil, apperror.Validation("session owner is required")
	}

	wallet, err := s.walletRepo.GetByID(ctx, req.WalletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet %d: %w", req.WalletID, err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}

	var (
		walletAccounts []domain.Account
		allWallets     []domain.Wallet
		allAccounts    []domain.Account
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		walletAccounts, err = s.accountRepo.ListByWallet(gctx, wallet.ID, s.chain.ChainID)
		return err
	})
	g.Go(func() (err error) {
		allWallets, err = s.walletRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		allAccounts, err = s.accountRepo.ListByChain(gctx, s.chain.ChainID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load wallet directory: %w", err))
	}

	active, err := selectAccounts(walletAccounts, req.AccountIDs)
	if err != nil {
		return nil, err
	}

	tree, err := txbuilder.CreateTransactionBuilder(*wallet, active, allWallets, allAccounts, s.chain)
	if err != nil {
		s.log.Info().Err(err).Int64("wallet_id", wallet.ID).Msg("transaction builder rejected")
		return nil, coreError(err)
	}

	session := &ports.Session{
		ID:        uuid.New(),
		Owner:     req.Owner,
		Tree:      tree,
		CreatedAt: time.Now().UTC(),
	}
	s.store.Save(session)

	s.log.Info().
		Str("session_id", session.ID.String()).
		Int64("wallet_id", wallet.ID).
		Str("wallet_type", string(wallet.Type)).
		Int("accounts", len(active)).
		Msg("signing session opened")

	return viewOf(session, s.chain), nil
}

// selectAccounts keeps the accounts named by ids, in that order. No ids
// selects every account.
func selectAccounts(accounts []domain.Account, ids []int64) ([]domain.Account, error) {
	if len(ids) == 0 {
		return accounts, nil
	}

	byID := make(map[int64]domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	out := make([]domain.Account, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		a, ok := byID[id]
		if !ok {
			return nil, apperror.ErrNotFound(fmt.Sprintf("Account %d", id))
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *SigningSessionServiceImpl) GetSession(_ context.Context, ref ports.SessionRef) (*ports.SessionView, error) {
	var view *ports.SessionView
	err := s.withSession(ref, func(session *ports.Session) error {
		view = viewOf(session, s.chain)
		return nil
	})
	return view, err
}

func (s *SigningSessionServiceImpl) CloseSession(_ context.Context, ref ports.SessionRef) error {
	if _, err := s.lookup(ref); err != nil {
		return err
	}
	s.store.Delete(ref.ID)
	s.log.Info().Str("session_id", ref.ID.String()).Msg("signing session closed")
	return nil
}

// SetCalls edits the calls of the active signer.
func (s *SigningSessionServiceImpl) SetCalls(_ context.Context, req ports.SetCallsRequest) (*ports.SessionView, error) {
	for i, c := range req.Calls {
		if c.IsZero() {
			return nil, apperror.Validation(fmt.Sprintf("call %d has no section or method", i))
		}
	}

	var view *ports.SessionView
	err := s.withSession(req.Ref, func(session *ports.Session) error {
		calls := session.Tree.CallBuilder()
		switch req.Mode {
		case ports.CallsModeAdd:
			for _, c := range req.Calls {
				calls.AddCall(txbuilder.NewCallBuilding(c))
			}
		case ports.CallsModeSet:
			calls.ResetCalls()
			for _, c := range req.Calls {
				calls.AddCall(txbuilder.NewCallBuilding(c))
			}
		case ports.CallsModeReset:
			calls.ResetCalls()
		default:
			return apperror.Validation(fmt.Sprintf("unknown calls mode %q", req.Mode))
		}
		view = viewOf(session, s.chain)
		return nil
	})
	return view, err
}

// SelectSignatory switches the signatory of a multisig on the active path.
func (s *SigningSessionServiceImpl) SelectSignatory(_ context.Context, req ports.SelectSignatoryRequest) (*ports.SessionView, error) {
	var view *ports.SessionView
	err := s.withSession(req.Ref, func(session *ports.Session) error {
		m, ok := txbuilder.FindMultisig(session.Tree, req.MultisigAccountID)
		if !ok {
			return apperror.ErrUnknownSigner(fmt.Sprintf("multisig %s is not on the active path", req.MultisigAccountID))
		}

		var (
			target domain.AccountInWallet
			found  bool
		)
		for _, k := range m.KnownSignatories() {
			if k.Wallet.ID == req.SignatoryWalletID && k.Account.ID == req.SignatoryAccountID {
				target, found = k, true
				break
			}
		}
		if !found {
			return apperror.ErrUnknownSigner("signatory is not a known signer of the multisig")
		}

		if err := m.UpdateSelectedSignatory(target); err != nil {
			return coreError(err)
		}

		s.log.Info().
			Str("session_id", session.ID.String()).
			Str("multisig", req.MultisigAccountID.String()).
			Int64("wallet_id", target.Wallet.ID).
			Int64("account_id", target.Account.ID).
			Msg("signatory selected")
		view = viewOf(session, s.chain)
		return nil
	})
	return view, err
}

// SelectShard switches the active shard of a compound wallet on the active path.
func (s *SigningSessionServiceImpl) SelectShard(_ context.Context, req ports.SelectShardRequest) (*ports.SessionView, error) {
	var view *ports.SessionView
	err := s.withSession(req.Ref, func(session *ports.Session) error {
		c, ok := txbuilder.FindCompoundWallet(session.Tree, req.WalletID)
		if !ok {
			return apperror.ErrUnknownSigner(fmt.Sprintf("wallet %d is not a compound wallet on the active path", req.WalletID))
		}

		var (
			shard domain.Account
			found bool
		)
		for _, a := range c.Shards() {
			if a.ID == req.ShardID {
				shard, found = a, true
				break
			}
		}
		if !found {
			return apperror.ErrUnknownSigner("shard does not belong to the compound wallet")
		}

		if err := c.UpdateSelectedShard(shard); err != nil {
			return coreError(err)
		}

		s.log.Info().
			Str("session_id", session.ID.String()).
			Int64("wallet_id", req.WalletID).
			Int64("account_id", shard.ID).
			Msg("shard selected")
		view = viewOf(session, s.chain)
		return nil
	})
	return view, err
}

// SigningAccounts resolves who signs, with their chain addresses.
func (s *SigningSessionServiceImpl) SigningAccounts(_ context.Context, ref ports.SessionRef) ([]ports.Signer, error) {
	var signers []ports.Signer
	err := s.withSession(ref, func(session *ports.Session) error {
		resolved, err := txbuilder.RequireSigningAccounts(session.Tree)
		if err != nil {
			return coreError(err)
		}

		signers = make([]ports.Signer, len(resolved.Accounts))
		for i, a := range resolved.Accounts {
			addr, err := txbuilder.Address(s.chain, a.AccountID)
			if err != nil {
				return apperror.InternalError(err)
			}
			signers[i] = ports.Signer{Wallet: resolved.Wallet, Account: a, Address: addr}
		}
		return nil
	})
	return signers, err
}

func (s *SigningSessionServiceImpl) Fee(ctx context.Context, ref ports.SessionRef) (domain.AmountReduction, error) {
	var fee domain.AmountReduction
	err := s.withSession(ref, func(session *ports.Session) (err error) {
		fee, err = txbuilder.GetTransactionFee(ctx, session.Tree, s.chainQuery)
		return s.chainError(session, "fee", err)
	})
	return fee, err
}

func (s *SigningSessionServiceImpl) Deposits(ctx context.Context, ref ports.SessionRef) (domain.AmountReduction, error) {
	var deposits domain.AmountReduction
	err := s.withSession(ref, func(session *ports.Session) (err error) {
		deposits, err = txbuilder.GetDeposits(ctx, session.Tree, s.chainQuery)
		return s.chainError(session, "deposits", err)
	})
	return deposits, err
}

// Estimate computes fee and deposits concurrently. Both only read the tree.
func (s *SigningSessionServiceImpl) Estimate(ctx context.Context, ref ports.SessionRef) (*ports.Estimate, error) {
	var out ports.Estimate
	err := s.withSession(ref, func(session *ports.Session) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			out.Fee, err = txbuilder.GetTransactionFee(gctx, session.Tree, s.chainQuery)
			return err
		})
		g.Go(func() (err error) {
			out.Deposits, err = txbuilder.GetDeposits(gctx, session.Tree, s.chainQuery)
			return err
		})
		return s.chainError(session, "estimate", g.Wait())
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SigningSessionServiceImpl) UnsignedTransactions(ctx context.Context, ref ports.SessionRef) ([]*domain.UnsignedTransaction, error) {
	var txs []*domain.UnsignedTransaction
	err := s.withSession(ref, func(session *ports.Session) (err error) {
		txs, err = txbuilder.GetUnsignedTransactions(ctx, session.Tree, s.chainQuery)
		if err != nil {
			return s.chainError(session, "unsigned transactions", err)
		}
		s.log.Info().
			Str("session_id", session.ID.String()).
			Int("transactions", len(txs)).
			Msg("unsigned transactions assembled")
		return nil
	})
	return txs, err
}

func (s *SigningSessionServiceImpl) lookup(ref ports.SessionRef) (*ports.Session, error) {
	session, ok := s.store.Get(ref.ID)
	if !ok || session.Owner != ref.Owner {
		return nil, apperror.ErrSessionNotFound()
	}
	return session, nil
}

// withSession runs fn with the session locked.
func (s *SigningSessionServiceImpl) withSession(ref ports.SessionRef, fn func(*ports.Session) error) error {
	session, err := s.lookup(ref)
	if err != nil {
		return err
	}
	session.Lock()
	defer session.Unlock()
	return fn(session)
}

// chainError maps a failed chain-backed operation, logging chain failures.
func (s *SigningSessionServiceImpl) chainError(session *ports.Session, op string, err error) error {
	if err == nil {
		return nil
	}
	if appErr := toAppError(err); appErr != nil {
		return appErr
	}
	s.log.Warn().Err(err).Str("session_id", session.ID.String()).Str("op", op).Msg("chain query failed")
	return apperror.ErrChainUnavailable(err)
}

// coreError is toAppError with unknown errors reported as SYS_001.
func coreError(err error) error {
	if appErr := toAppError(err); appErr != nil {
		return appErr
	}
	return apperror.InternalError(err)
}

// toAppError maps core errors to API errors. It returns nil for errors
// that are not core errors.
func toAppError(err error) *apperror.AppError {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, txbuilder.ErrSigningNotAllowed):
		return apperror.ErrSigningNotAllowed()
	case errors.Is(err, txbuilder.ErrEmptyShardList):
		return apperror.ErrEmptyShardList()
	case errors.Is(err, txbuilder.ErrNoSigningAccounts):
		return apperror.ErrNoSigningAccounts()
	case errors.Is(err, txbuilder.ErrNoCalls):
		return apperror.ErrNoCalls()
	case errors.Is(err, txbuilder.ErrSignatoryCycle):
		return apperror.ErrSignatoryCycle()
	case errors.Is(err, txbuilder.ErrUnknownSignatory):
		return apperror.ErrUnknownSigner("signatory is not a known signer of the multisig")
	case errors.Is(err, txbuilder.ErrUnknownShard):
		return apperror.ErrUnknownSigner("shard does not belong to the compound wallet")
	}
	return nil
}

func viewOf(session *ports.Session, chain domain.Chain) *ports.SessionView {
	current := session.Tree.CallBuilder().CurrentCalls()
	calls := make([]domain.Call, len(current))
	for i, c := range current {
		calls[i] = c.FeeProbe
	}
	return &ports.SessionView{
		ID:        session.ID,
		Chain:     chain,
		Shape:     txbuilder.Describe(session.Tree),
		Calls:     calls,
		CreatedAt: session.CreatedAt,
	}
}
