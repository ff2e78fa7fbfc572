// Package rpc implements the vault backend over JSON-over-HTTP. Each backend
// command is a POST to /invoke/{command} carrying named arguments; the
// service may listen on TCP or on a unix domain socket.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
	unixScheme     = "unix://"
	maxErrorBody   = 64 << 10
)

// CommandError is a rejection reported by the backend
type CommandError struct {
	Command string
	Status  int
	Message string
}

func (e *CommandError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend returned %d", e.Command, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Message)
}

// ErrUnreachable wraps transport failures
var ErrUnreachable = errors.New("backend unreachable")

// Config holds client configuration
type Config struct {
	Addr    string // http(s)://host:port, host:port, or unix:///path/to.sock
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client is a VaultBackend speaking to the vault service
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client for cfg.Addr
func New(cfg Config) (*Client, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("rpc: backend address is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,
	}

	baseURL := addr
	switch {
	case strings.HasPrefix(addr, unixScheme):
		socket := strings.TrimPrefix(addr, unixScheme)
		if socket == "" {
			return nil, errors.New("rpc: unix socket path is required")
		}
		transport.DialContext = func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", socket)
		}
		baseURL = "http://vault"
	case !strings.Contains(addr, "://"):
		baseURL = "http://" + addr
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		logger: logger,
	}, nil
}

// invoke sends one command. A nil out discards the response body.
func (c *Client) invoke(ctx context.Context, command string, args any, out any) error {
	if args == nil {
		args = struct{}{}
	}
	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("%s: encode arguments: %w", command, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/invoke/"+command, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend call failed",
			zap.String("command", command),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w: %v", command, ErrUnreachable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend call",
		zap.String("command", command),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(command, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", command, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", command, err)
	}
	return nil
}

func decodeError(command string, resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	cerr := &CommandError{Command: command, Status: resp.StatusCode}

	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		cerr.Message = payload.Error
	} else {
		cerr.Message = strings.TrimSpace(string(data))
	}
	return cerr
}
