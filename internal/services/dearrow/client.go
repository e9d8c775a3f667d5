package dearrow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/denisAlshanov/rustyreel/internal/services/youtube"
	"github.com/denisAlshanov/rustyreel/internal/utils"
)

// BrandingAPIURL is the public DeArrow branding endpoint.
const BrandingAPIURL = "https://sponsor.ajay.app/api/branding"

type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
}

type Option func(*Client)

// WithEndpoint points the client at another branding endpoint, such as a
// self-hosted mirror or a test server.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a DeArrow client on top of httpClient. Timeouts and
// connection pooling belong to httpClient; a nil httpClient means
// http.DefaultClient.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		httpClient: httpClient,
		endpoint:   BrandingAPIURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup parses raw and fetches branding for the resulting video ID. Errors
// are either *youtube.VideoIDParseError or *TransportError. The parsed ID is
// returned whenever parsing succeeded, even if the request failed.
func (c *Client) Lookup(ctx context.Context, raw string) (youtube.VideoID, *BrandingResponse, error) {
	id, err := youtube.ParseVideoID(raw)
	if err != nil {
		return "", nil, err
	}
	res, err := c.GetBranding(ctx, id)
	return id, res, err
}

// GetBranding performs a single GET round trip for id. The endpoint takes its
// parameters from a JSON body even though the verb is GET.
func (c *Client) GetBranding(ctx context.Context, id youtube.VideoID) (*BrandingResponse, error) {
	req := NewBrandingRequest(id)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	utils.LogDebug(ctx, "Sending branding request", utils.Fields{
		"endpoint": c.endpoint,
		"video_id": id.String(),
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	utils.LogDebug(ctx, "Received branding response", utils.Fields{
		"video_id": id.String(),
		"status":   resp.StatusCode,
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, &TransportError{Err: fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)}
	}

	var branding BrandingResponse
	if err := json.NewDecoder(resp.Body).Decode(&branding); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return &branding, nil
}
