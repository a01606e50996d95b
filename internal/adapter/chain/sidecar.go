package chain

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tx-composer/internal/core/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultEraPeriod is the mortality, in blocks, given to every transaction.
	DefaultEraPeriod = 64

	// nonceConcurrency bounds the balance-info requests made per metadata call.
	nonceConcurrency = 4
)

// SidecarClient implements ports.ChainQuery against substrate-api-sidecar.
type SidecarClient struct {
	baseURL   string
	client    *http.Client
	encoder   CallEncoder
	eraPeriod uint64
	log       zerolog.Logger
}

// NewSidecarClient creates a SidecarClient. Fee estimation needs encoder
// to produce the extrinsic sidecar dry-runs.
func NewSidecarClient(baseURL string, timeout time.Duration, encoder CallEncoder, log zerolog.Logger) *SidecarClient {
	return &SidecarClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: timeout},
		encoder:   encoder,
		eraPeriod: DefaultEraPeriod,
		log:       log,
	}
}

// WithEraPeriod sets the mortality of produced transactions.
func (c *SidecarClient) WithEraPeriod(blocks uint64) *SidecarClient {
	c.eraPeriod = blocks
	return c
}

type feeEstimateRequest struct {
	Tx string `json:"tx"`
}

type feeEstimateResponse struct {
	PartialFee string `json:"partialFee"`
}

// PaymentInfo estimates the partial fee of call submitted by address.
func (c *SidecarClient) PaymentInfo(ctx context.Context, call domain.Call, address string) (*big.Int, error) {
	tx, err := c.encoder.EncodeForFee(ctx, call, address)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", call.Name(), err)
	}

	var out feeEstimateResponse
	if err := postJSON(ctx, c.client, "fee-estimate", c.baseURL+"/transaction/fee-estimate", feeEstimateRequest{Tx: tx}, &out); err != nil {
		return nil, err
	}

	fee, ok := new(big.Int).SetString(out.PartialFee, 10)
	if !ok {
		return nil, &RequestError{Operation: "fee-estimate", Message: fmt.Sprintf("bad partialFee %q", out.PartialFee)}
	}

	c.log.Debug().
		Str("call", call.Name()).
		Str("address", address).
		Str("partial_fee", fee.String()).
		Msg("fee estimated")
	return fee, nil
}

type palletConstResponse struct {
	Metadata struct {
		Value string `json:"value"`
	} `json:"metadata"`
}

// MultisigDepositConstants reads DepositBase and DepositFactor of the
// multisig pallet.
func (c *SidecarClient) MultisigDepositConstants(ctx context.Context) (domain.MultisigDeposit, error) {
	var base, factor *big.Int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		base, err = c.palletConstU128(gctx, "multisig", "DepositBase")
		return err
	})
	g.Go(func() (err error) {
		factor, err = c.palletConstU128(gctx, "multisig", "DepositFactor")
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.MultisigDeposit{}, err
	}

	return domain.MultisigDeposit{Base: base, Factor: factor}, nil
}

func (c *SidecarClient) palletConstU128(ctx context.Context, pallet, item string) (*big.Int, error) {
	op := "pallet-const " + pallet + "." + item
	var out palletConstResponse
	path := fmt.Sprintf("%s/pallets/%s/consts/%s", c.baseURL, url.PathEscape(pallet), url.PathEscape(item))
	if err := getJSON(ctx, c.client, op, path, &out); err != nil {
		return nil, err
	}

	v, err := decodeU128(out.Metadata.Value)
	if err != nil {
		return nil, &RequestError{Operation: op, Message: err.Error()}
	}
	return v, nil
}

// decodeU128 decodes a SCALE-encoded (little endian) u128 hex string.
func decodeU128(s string) (*big.Int, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("bad u128 %q: %w", s, err)
	}
	if len(raw) != 16 {
		return nil, fmt.Errorf("bad u128 %q: %d bytes", s, len(raw))
	}
	be := make([]byte, len(raw))
	for i, b := range raw {
		be[len(raw)-1-i] = b
	}
	return new(big.Int).SetBytes(be), nil
}

type materialResponse struct {
	At struct {
		Hash   string `json:"hash"`
		Height string `json:"height"`
	} `json:"at"`
	GenesisHash string `json:"genesisHash"`
	SpecVersion string `json:"specVersion"`
	TxVersion   string `json:"txVersion"`
}

type balanceInfoResponse struct {
	Nonce string `json:"nonce"`
}

// CreateTransactionMetadata fetches the transaction material once and the
// nonce of every address, returning bundles in the order of addresses.
func (c *SidecarClient) CreateTransactionMetadata(ctx context.Context, addresses []string) ([]domain.TxMetadata, error) {
	var material materialResponse
	if err := getJSON(ctx, c.client, "material", c.baseURL+"/transaction/material?noMeta=true", &material); err != nil {
		return nil, err
	}

	blockNumber, err := parseUint("material", "at.height", material.At.Height, 64)
	if err != nil {
		return nil, err
	}
	specVersion, err := parseUint("material", "specVersion", material.SpecVersion, 32)
	if err != nil {
		return nil, err
	}
	txVersion, err := parseUint("material", "txVersion", material.TxVersion, 32)
	if err != nil {
		return nil, err
	}

	nonces, err := c.nonces(ctx, addresses)
	if err != nil {
		return nil, err
	}

	out := make([]domain.TxMetadata, len(addresses))
	for i, address := range addresses {
		out[i] = domain.TxMetadata{
			Options: domain.TxOptions{
				Address:            address,
				Nonce:              nonces[i],
				BlockHash:          material.At.Hash,
				BlockNumber:        blockNumber,
				EraPeriod:          c.eraPeriod,
				GenesisHash:        material.GenesisHash,
				SpecVersion:        uint32(specVersion),
				TransactionVersion: uint32(txVersion),
				Tip:                "0",
			},
			Info: domain.TxInfo{
				Address: address,
				ChainID: material.GenesisHash,
			},
		}
	}
	return out, nil
}

// nonces fetches the account nonce once per distinct address. An address
// listed again signs after its earlier transactions, so it gets the next
// nonce.
func (c *SidecarClient) nonces(ctx context.Context, addresses []string) ([]uint64, error) {
	var distinct []string
	index := make(map[string]int, len(addresses))
	for _, address := range addresses {
		if _, ok := index[address]; !ok {
			index[address] = len(distinct)
			distinct = append(distinct, address)
		}
	}

	fetched := make([]uint64, len(distinct))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(nonceConcurrency)
	for i, address := range distinct {
		g.Go(func() error {
			n, err := c.nonce(gctx, address)
			if err != nil {
				return err
			}
			fetched[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(distinct) < len(addresses) {
		c.log.Warn().Int("addresses", len(addresses)).Int("distinct", len(distinct)).Msg("repeated signer addresses, assigning consecutive nonces")
	}

	out := make([]uint64, len(addresses))
	for i, address := range addresses {
		j := index[address]
		out[i] = fetched[j]
		fetched[j]++
	}
	return out, nil
}

func (c *SidecarClient) nonce(ctx context.Context, address string) (uint64, error) {
	var out balanceInfoResponse
	path := fmt.Sprintf("%s/accounts/%s/balance-info", c.baseURL, url.PathEscape(address))
	if err := getJSON(ctx, c.client, "balance-info", path, &out); err != nil {
		return 0, err
	}
	return parseUint("balance-info", "nonce", out.Nonce, 64)
}

func parseUint(op, field, s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, &RequestError{Operation: op, Message: fmt.Sprintf("bad %s %q", field, s)}
	}
	return v, nil
}

// Ping implements ports.HealthChecker.
func (c *SidecarClient) Ping(ctx context.Context) error {
	return getJSON(ctx, c.client, "node-version", c.baseURL+"/node/version", nil)
}

// Name implements ports.HealthChecker.
func (c *SidecarClient) Name() string {
	return "sidecar"
}
