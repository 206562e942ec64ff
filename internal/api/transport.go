package api

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dmy/realworld-tui/internal/logger"
)

//go:generate mockgen -source=transport.go -destination=../mock/sender_mock.go -package=mock

// Sender submits a Descriptor and returns its decoded result. A non-nil
// Errors value is the complete, displayable failure report; Send never
// panics and never returns a partial result alongside errors.
type Sender interface {
	Send(ctx context.Context, d Descriptor) (any, Errors)
}

// Client is the resty-backed Sender talking to a Conduit backend.
type Client struct {
	http   *resty.Client
	logger *logger.Logger
}

// NewClient constructs a Client for the backend rooted at baseURL (the
// "/api" prefix is appended here, not by callers). A zero timeout keeps
// resty's default.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/api")
	if timeout > 0 {
		http.SetTimeout(timeout)
	}

	return &Client{http: http, logger: log}
}

// Send implements [Sender]. It performs the described request, classifies
// any failure into [Errors], and on success applies the descriptor's Decode
// function to the response body.
func (c *Client) Send(ctx context.Context, d Descriptor) (any, Errors) {
	req := c.http.R().SetContext(ctx)

	if len(d.Query) > 0 {
		req.SetQueryParamsFromValues(d.Query)
	}
	for _, h := range d.Headers {
		req.SetHeader(h.Key, h.Value)
	}
	if d.Body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(d.Body)
	}

	resp, err := req.Execute(d.Method, d.Path)
	if err != nil {
		c.logger.Error().Err(err).Str("method", d.Method).Str("path", d.Path).Msg("request failed")
		return nil, classifySendError(err)
	}
	if !resp.IsSuccess() {
		c.logger.Warn().Int("status", resp.StatusCode()).Str("method", d.Method).Str("path", d.Path).Msg("request rejected")
		return nil, classifyStatus(resp)
	}

	if d.Decode == nil {
		return nil, nil
	}

	value, err := d.Decode(resp.Body())
	if err != nil {
		c.logger.Error().Err(err).Str("method", d.Method).Str("path", d.Path).Msg("response decode failed")
		return nil, classifyDecodeError(err)
	}
	return value, nil
}
