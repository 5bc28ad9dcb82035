// Package remote talks to a recitation server over its REST API. The
// clients mirror the method sets of the text and recording services so
// callers can swap a local store for a remote one.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/pkg/ctxutil"
)

// Client is the shared HTTP client behind TextClient and RecordingClient.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// New creates a Client for cfg.BaseURL.
func New(cfg config.RemoteConfig, log *slog.Logger) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	return &Client{http: c, log: log.With("adapter", "remote")}
}

// Ping checks that the server is reachable and its store is ready.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/ready")
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return fmt.Errorf("remote: ready returned %d: %w", resp.StatusCode(), domain.ErrStorage)
	}
	return nil
}

// Texts returns a TextClient sharing c.
func (c *Client) Texts() *TextClient { return &TextClient{c: c} }

// Recordings returns a RecordingClient sharing c.
func (c *Client) Recordings() *RecordingClient { return &RecordingClient{c: c} }

type envelope[T any] struct {
	Success bool       `json:"success"`
	Data    T          `json:"data"`
	Error   *errorBody `json:"error"`
}

// requestIDHeader matches the header the server echoes.
const requestIDHeader = "X-Request-Id"

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Fields  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

// call executes req against path and decodes the success envelope into T.
func call[T any](ctx context.Context, c *Client, method, path string, req *resty.Request) (T, error) {
	var (
		ok   envelope[T]
		fail envelope[struct{}]
		zero T
	)

	if req == nil {
		req = c.http.R()
	}
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		req.SetHeader(requestIDHeader, id)
	}
	resp, err := req.
		SetContext(ctx).
		SetResult(&ok).
		SetError(&fail).
		Execute(method, path)
	if err != nil {
		return zero, transportError(err)
	}

	if resp.IsError() {
		apiErr := newAPIError(resp.StatusCode(), fail.Error)
		if apiErr.Status >= http.StatusInternalServerError {
			c.log.WarnContext(ctx, "remote request failed",
				slog.String("method", method),
				slog.String("path", path),
				slog.Int("status", apiErr.Status),
				slog.String("code", apiErr.Code),
				slog.String("request_id", resp.Header().Get(requestIDHeader)),
			)
		}
		return zero, apiErr
	}
	if !ok.Success {
		return zero, fmt.Errorf("remote: %s %s: unexpected envelope: %w", method, path, domain.ErrStorage)
	}
	return ok.Data, nil
}

// transportError keeps cancellation visible and reports everything else as
// a store failure.
func transportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("remote: %w: %w", domain.ErrStorage, err)
}
