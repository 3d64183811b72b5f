package backend

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/modhost/internal/ctxlog"
)

// DefaultTimeout bounds one request/response exchange with the gateway.
const DefaultTimeout = 10 * time.Second

// ClientConfig configures the gateway client.
type ClientConfig struct {
	// URL is the gateway endpoint, e.g. "wss://chat.local/modules".
	URL string
	// Namespace is the socket.io namespace, "/" when empty.
	Namespace string
	// Timeout bounds each exchange; DefaultTimeout when zero.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification. Test
	// environments only.
	InsecureSkipVerify bool
}

// Client talks to the chat backend's module gateway. It implements the
// facade's AccountSession and Navigator collaborator interfaces.
type Client struct {
	cfg ClientConfig
}

// NewClient creates a gateway client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Namespace == "" {
		cfg.Namespace = "/"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{cfg: cfg}
}

// exchangeResult passes one response through the done channel.
type exchangeResult struct {
	value any
	err   error
}

// exchange connects, emits event with payload, and waits for okEvent or
// errEvent. The connection is torn down when the exchange ends, whichever
// way it ends.
func (c *Client) exchange(ctx context.Context, event string, payload map[string]any, okEvent, errEvent string) (any, error) {
	logger := ctxlog.FromContext(ctx).With("gateway", c.cfg.URL, "event", event)
	logger.Debug("Gateway exchange started.")
	defer logger.Debug("Gateway exchange finished.")

	parsedURL, err := url.Parse(c.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway URL: %w", err)
	}

	opCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))
	if c.cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification for gateway connection.")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(c.cfg.Namespace, opts)
	defer io.Disconnect()

	done := make(chan exchangeResult, 1)

	io.On(types.EventName("connect"), func(...any) {
		logger.Debug("Gateway connected; emitting request.")
		io.Emit(event, payload)
	})
	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if connErr, ok := errs[0].(error); ok {
				done <- exchangeResult{err: connErr}
				return
			}
		}
		done <- exchangeResult{err: fmt.Errorf("gateway connection failed")}
	})
	io.On(types.EventName(okEvent), func(data ...any) {
		var value any
		if len(data) > 0 {
			value = data[0]
		}
		done <- exchangeResult{value: value}
	})
	io.On(types.EventName(errEvent), func(data ...any) {
		var detail any
		if len(data) > 0 {
			detail = data[0]
		}
		done <- exchangeResult{err: fmt.Errorf("gateway rejected %s: %v", event, detail)}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		return nil, fmt.Errorf("gateway exchange %s: %w", event, opCtx.Err())
	case res := <-done:
		return res.value, res.err
	}
}
