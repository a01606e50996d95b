package chain

import (
	"context"
	"net/http"
	"strings"
	"time"

	"tx-composer/internal/core/domain"
)

// CallEncoder turns a call into a signed-shape extrinsic that the node can
// dry-run for fee estimation. Encoding rules live outside this service.
type CallEncoder interface {
	EncodeForFee(ctx context.Context, call domain.Call, address string) (string, error)
}

// EncoderClient implements CallEncoder against a txwrapper HTTP service:
//
//	POST /encode {"call": {...}, "address": "5F..."} -> {"tx": "0x..."}
type EncoderClient struct {
	baseURL string
	client  *http.Client
}

// NewEncoderClient creates an EncoderClient.
func NewEncoderClient(baseURL string, timeout time.Duration) *EncoderClient {
	return &EncoderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type encodeRequest struct {
	Call    domain.Call `json:"call"`
	Address string      `json:"address"`
}

type encodeResponse struct {
	Tx string `json:"tx"`
}

func (e *EncoderClient) EncodeForFee(ctx context.Context, call domain.Call, address string) (string, error) {
	var out encodeResponse
	err := postJSON(ctx, e.client, "encode", e.baseURL+"/encode", encodeRequest{Call: call, Address: address}, &out)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(out.Tx, "0x") {
		return "", &RequestError{Operation: "encode", Message: "encoder returned no extrinsic"}
	}
	return out.Tx, nil
}
