package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ChatRequest and ChatResponse are the JSON bodies exchanged on /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Client asks a remote /api/chat endpoint and falls back to a local Responder
// whenever the remote cannot be reached or answers badly.
type Client struct {
	baseURL    string
	httpClient *http.Client
	local      *Responder
	logger     zerolog.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

func NewClient(baseURL string, local *Responder, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
		local:      local,
		logger:     zerolog.Nop(),
	}
	if c.local == nil {
		c.local = NewResponder(nil)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ask returns a reply for message and whether it came from the remote server.
// It never fails: transport errors are logged and answered locally.
func (c *Client) Ask(ctx context.Context, message string) (string, bool) {
	if c.baseURL == "" {
		return c.local.Respond(message), false
	}

	reply, err := c.remote(ctx, message)
	if err != nil {
		c.logger.Warn().Err(err).Str("server", c.baseURL).Msg("chat server unavailable, answering locally")
		return c.local.Respond(message), false
	}
	return reply, true
}

func (c *Client) remote(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(ChatRequest{Message: message})
	if err != nil {
		return "", errors.Wrap(err, "encode chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build chat request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "post chat request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", errors.Errorf("chat server returned %s", resp.Status)
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "decode chat response")
	}
	if out.Response == "" {
		return "", errors.New("chat server returned an empty reply")
	}
	return out.Response, nil
}
