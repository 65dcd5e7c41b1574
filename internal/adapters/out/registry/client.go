package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"officeorder/internal/pkg/errs"
)

// RawResultKind tells which shape the decrypted response parsed into.
type RawResultKind int

const (
	// ResultText is decrypted text that failed structured parsing. It is
	// still returned so literal backend error strings reach the user.
	ResultText RawResultKind = iota

	// ResultObject is a single JSON object.
	ResultObject

	// ResultList is a JSON array of objects.
	ResultList
)

// RawResult is one decrypted, parsed backend response.
type RawResult struct {
	Kind   RawResultKind
	Object map[string]any
	List   []map[string]any
	Text   string
}

// FirstRecord returns the single object, or the first element of a list.
func (r RawResult) FirstRecord() (map[string]any, bool) {
	switch r.Kind {
	case ResultObject:
		return r.Object, true
	case ResultList:
		if len(r.List) > 0 {
			return r.List[0], true
		}
	}
	return nil, false
}

// requestBody is the one wire shape every call uses.
type requestBody struct {
	Data string `json:"Data"`
}

// responseBody accepts the canonical casing and the legacy lower-case field
// some backend routes still emit.
type responseBody struct {
	Data       string `json:"Data"`
	LegacyData string `json:"data"`
}

// Client speaks the secure envelope protocol with the registry backend:
// every request is `POST <endpoint> {"Data": <encrypted>}` and every
// response carries the same shape back.
type Client struct {
	httpClient *http.Client
	baseURL    string
	envelope   *Envelope
	logger     *slog.Logger
}

// NewClient creates a protocol client for the given backend base URL.
func NewClient(httpClient *http.Client, baseURL string, envelope *Envelope, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("registry base url")
	}
	if envelope == nil {
		return nil, errs.NewValueIsRequiredError("envelope")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		envelope:   envelope,
		logger:     logger.With("component", "registry-client"),
	}, nil
}

// Call encrypts the payload, posts it to the endpoint, and decrypts and
// parses the response. Decrypted text that is not valid JSON comes back as
// ResultText for literal error propagation.
func (c *Client) Call(ctx context.Context, endpoint string, payload any) (RawResult, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return RawResult{}, errs.NewProtocolErrorWithCause("payload is not serializable", err)
	}

	blob, err := c.envelope.Encrypt(plaintext)
	if err != nil {
		return RawResult{}, err
	}

	body, err := json.Marshal(requestBody{Data: blob})
	if err != nil {
		return RawResult{}, errs.NewProtocolErrorWithCause("envelope is not serializable", err)
	}

	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return RawResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RawResult{}, fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("registry call failed",
			"endpoint", endpoint, "status", resp.StatusCode)
		return RawResult{}, errs.NewTransportError(endpoint, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return RawResult{}, fmt.Errorf("read response: %w", err)
	}

	var envelope responseBody
	if err = json.Unmarshal(raw, &envelope); err != nil {
		return RawResult{}, errs.NewProtocolErrorWithCause("response is not an envelope", err)
	}

	encrypted := envelope.Data
	if encrypted == "" {
		encrypted = envelope.LegacyData
	}
	if encrypted == "" {
		return RawResult{}, errs.NewProtocolError("Encrypted payload missing")
	}

	plaintext, err = c.envelope.Decrypt(encrypted)
	if err != nil {
		return RawResult{}, err
	}

	return parseDecrypted(plaintext), nil
}

// parseDecrypted attempts structured parsing; unparsable text is returned
// as-is.
func parseDecrypted(plaintext []byte) RawResult {
	var object map[string]any
	if err := json.Unmarshal(plaintext, &object); err == nil {
		return RawResult{Kind: ResultObject, Object: object}
	}

	var list []map[string]any
	if err := json.Unmarshal(plaintext, &list); err == nil {
		return RawResult{Kind: ResultList, List: list}
	}

	return RawResult{Kind: ResultText, Text: string(plaintext)}
}
