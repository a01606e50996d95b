package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a failed response ends up in an error.
const maxErrorBody = 512

func getJSON(ctx context.Context, client *http.Client, op, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &RequestError{Operation: op, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	return do(client, op, req, out)
}

func postJSON(ctx context.Context, client *http.Client, op, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &RequestError{Operation: op, Message: err.Error()}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return &RequestError{Operation: op, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return do(client, op, req, out)
}

func do(client *http.Client, op string, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return &RequestError{Operation: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RequestError{
			Operation: op,
			Status:    resp.StatusCode,
			Message:   strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Operation: op, Message: "failed to parse response: " + err.Error()}
	}
	return nil
}
