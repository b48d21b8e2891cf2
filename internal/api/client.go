// Package api talks to the remote draw service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/arcanaland/shuffledraw/internal/card"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

// Client issues draw requests against a configured base URL
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a new draw service client. A zero timeout leaves the
// transport default in charge.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithHTTPClient returns a copy of the client that uses hc for requests
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	cp := *c
	cp.httpClient = hc
	return &cp
}

// DrawCards posts the request to {BaseURL}/draw and decodes the result.
// Every failure is an *Error.
func (c *Client) DrawCards(ctx context.Context, req draw.Request) (*draw.Result, error) {
	url := c.BaseURL + "/draw"

	requestBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	slog.Debug("Drawing cards", "url", url, "deck_size", req.DeckSize, "deck_reverse", req.DeckReverse, "num_cards", req.NumCards)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		slog.Error("Error drawing cards", "url", url, "err", err)
		return nil, &Error{Kind: KindTransport, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("Error reading draw response", "url", url, "err", err)
		return nil, &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := statusError(resp.StatusCode, body)
		slog.Error("Error drawing cards", "url", url, "status", resp.StatusCode, "kind", apiErr.Kind, "message", apiErr.Message)
		return nil, apiErr
	}

	var result draw.Result
	if err := json.Unmarshal(body, &result); err != nil {
		slog.Error("Error decoding draw response", "url", url, "err", err)
		return nil, &Error{
			Kind:       KindDecode,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode response body: %v", err),
			Err:        err,
		}
	}
	if result.DrawnCards == nil {
		result.DrawnCards = []card.Card{}
	}

	slog.Debug("Cards drawn", "count", len(result.DrawnCards), "message", result.Message)
	return &result, nil
}

// statusError prefers the service's own message and falls back to a
// generic one naming the status code
func statusError(code int, body []byte) *Error {
	var errorBody struct {
		Message string `json:"message"`
	}
	if len(body) > 0 && json.Unmarshal(body, &errorBody) == nil && errorBody.Message != "" {
		return &Error{Kind: KindService, StatusCode: code, Message: errorBody.Message}
	}
	return &Error{Kind: KindStatus, StatusCode: code, Message: fmt.Sprintf("HTTP error! status: %d", code)}
}
