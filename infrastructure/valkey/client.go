package valkey

import (
	"context"
	"fmt"
	"strings"
	"time"

	valkeylib "github.com/valkey-io/valkey-go"
)

const (
	// DefaultConnectTimeout is the maximum time to wait for initial connection
	DefaultConnectTimeout = 5 * time.Second

	// dayCounterTTL keeps per-day view counters around long enough to serve
	// "today" stats across the date boundary, then lets them expire.
	dayCounterTTL = 48 * time.Hour
)

// Config holds the configuration for creating a Valkey client
type Config struct {
	Address        string
	Password       string
	DB             int
	KeyPrefix      string
	ConnectTimeout time.Duration // Optional, defaults to DefaultConnectTimeout
}

// Client wraps the valkey-go client with application-specific functionality.
// This struct should be created via NewClient and passed as a dependency.
type Client struct {
	inner     valkeylib.Client
	keyPrefix string
}

// NewClient creates a new Valkey client instance.
// The caller is responsible for calling Close() when done.
// Returns an error if the connection cannot be established within the timeout.
func NewClient(cfg Config) (*Client, error) {
	opts := valkeylib.ClientOption{
		InitAddress: []string{cfg.Address},
		SelectDB:    cfg.DB,
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	inner, err := valkeylib.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create valkey client: %w", err)
	}

	timeout := cfg.ConnectTimeout
	if timeout == 0 {
		timeout = DefaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := inner.Do(ctx, inner.B().Ping().Build()).Error(); err != nil {
		inner.Close()
		return nil, fmt.Errorf("failed to ping valkey (timeout: %v): %w", timeout, err)
	}

	prefix := cfg.KeyPrefix
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}

	return &Client{
		inner:     inner,
		keyPrefix: prefix,
	}, nil
}

// Inner returns the underlying valkey-go client.
func (c *Client) Inner() valkeylib.Client {
	return c.inner
}

// Close closes the Valkey connection.
func (c *Client) Close() {
	if c.inner != nil {
		c.inner.Close()
	}
}

// Key constructs a prefixed key from the given parts.
// Example: Key("views", "w123") -> "floatkit:views:w123"
func (c *Client) Key(parts ...string) string {
	if len(parts) == 0 {
		return strings.TrimSuffix(c.keyPrefix, ":")
	}
	key := c.keyPrefix
	for i, p := range parts {
		key += p
		if i < len(parts)-1 {
			key += ":"
		}
	}
	return key
}

// Ping tests the connection to Valkey with a context for timeout control.
func (c *Client) Ping(ctx context.Context) error {
	return c.inner.Do(ctx, c.inner.B().Ping().Build()).Error()
}

// IsConnected tests if the connection is healthy (uses a short timeout).
func (c *Client) IsConnected() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return c.Ping(ctx) == nil
}

func dayKey(t time.Time) string {
	return t.UTC().Format("20060102")
}

// IncrView bumps the lifetime and per-day view counters for a widget.
func (c *Client) IncrView(ctx context.Context, widgetID string, at time.Time) error {
	totalKey := c.Key("views", "total", widgetID)
	if err := c.inner.Do(ctx, c.inner.B().Incr().Key(totalKey).Build()).Error(); err != nil {
		return err
	}

	day := c.Key("views", "day", widgetID, dayKey(at))
	if err := c.inner.Do(ctx, c.inner.B().Incr().Key(day).Build()).Error(); err != nil {
		return err
	}
	return c.inner.Do(ctx, c.inner.B().Expire().Key(day).Seconds(int64(dayCounterTTL.Seconds())).Build()).Error()
}

// ViewCounts returns the lifetime and today counters for a widget. Missing
// keys read as zero.
func (c *Client) ViewCounts(ctx context.Context, widgetID string, now time.Time) (total, today int64, err error) {
	total, err = c.readCounter(ctx, c.Key("views", "total", widgetID))
	if err != nil {
		return 0, 0, err
	}
	today, err = c.readCounter(ctx, c.Key("views", "day", widgetID, dayKey(now)))
	if err != nil {
		return 0, 0, err
	}
	return total, today, nil
}

func (c *Client) readCounter(ctx context.Context, key string) (int64, error) {
	resp := c.inner.Do(ctx, c.inner.B().Get().Key(key).Build())
	if err := resp.Error(); err != nil {
		if valkeylib.IsValkeyNil(err) {
			return 0, nil
		}
		return 0, err
	}
	return resp.AsInt64()
}

// CachedScript fetches a rendered script from the render cache. The second
// return value reports a hit; any error reads as a miss.
func (c *Client) CachedScript(ctx context.Context, widgetID string, configHash uint64) (string, bool) {
	key := c.Key("render", widgetID, fmt.Sprintf("%016x", configHash))
	resp := c.inner.Do(ctx, c.inner.B().Get().Key(key).Build())
	if resp.Error() != nil {
		return "", false
	}
	script, err := resp.ToString()
	if err != nil {
		return "", false
	}
	return script, true
}

// StoreScript writes a rendered script into the render cache with a TTL.
func (c *Client) StoreScript(ctx context.Context, widgetID string, configHash uint64, script string, ttl time.Duration) error {
	key := c.Key("render", widgetID, fmt.Sprintf("%016x", configHash))
	return c.inner.Do(ctx, c.inner.B().Set().Key(key).Value(script).Ex(ttl).Build()).Error()
}

// IsNil checks if an error returned by the client represents a Valkey NIL response.
func IsNil(err error) bool {
	return valkeylib.IsValkeyNil(err)
}
