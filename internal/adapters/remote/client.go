// Package remote retrieves archive documents over FTP with bounded
// reconnect-and-retry on transient failures.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"

	"github.com/okian/mulens/internal/adapters/archive"
	"github.com/okian/mulens/pkg/logger"
	"github.com/okian/mulens/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	anonymousUser     = "anonymous"
	anonymousPass     = "anonymous"
)

// Retriever fetches a document by its path relative to the archive root.
type Retriever interface {
	Retrieve(ctx context.Context, path string) (string, error)
	Close() error
}

// session is the slice of an authenticated FTP control connection that
// Retrieve needs. Reconnection replaces the whole session.
type session interface {
	Retr(path string) (io.ReadCloser, error)
	Quit() error
}

// dialFunc establishes an authenticated session with the archive.
type dialFunc func(ctx context.Context, host string, timeout time.Duration) (session, error)

// Client implements Retriever over a single reusable FTP connection. The
// handle must not be used by more than one logical request at a time; call
// sites are expected to serialize fetches.
type Client struct {
	host       string
	timeout    time.Duration
	maxRetries int
	log        logger.Logger
	dial       dialFunc

	conn session
}

// NewClient creates a Client with configuration options. The connection is
// established lazily on first use.
func NewClient(opts ...Option) *Client {
	c := &Client{
		host:       archive.DefaultHost + ":21",
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		dial:       dialFTP,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ftpSession adapts *ftp.ServerConn to the session interface.
type ftpSession struct {
	conn *ftp.ServerConn
}

func (s ftpSession) Retr(path string) (io.ReadCloser, error) { return s.conn.Retr(path) }
func (s ftpSession) Quit() error                             { return s.conn.Quit() }

// dialFTP dials the archive and performs the anonymous login.
func dialFTP(ctx context.Context, host string, timeout time.Duration) (session, error) {
	conn, err := ftp.Dial(host,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", host, err)
	}
	if err := conn.Login(anonymousUser, anonymousPass); err != nil {
		_ = conn.Quit()
		return nil, fmt.Errorf("login %s: %w", host, err)
	}
	return ftpSession{conn: conn}, nil
}

// Retrieve fetches the document at path. Permanent failures (invalid path,
// access disabled) are returned immediately. On a transient failure the
// connection is torn down, re-established, re-authenticated, and the
// identical request is re-issued, up to the retry cap; exhaustion fails
// with ErrRetryExhausted wrapping the last transient cause.
func (c *Client) Retrieve(ctx context.Context, path string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			metrics.RecordRemoteRetry()
			if c.log != nil {
				c.log.Warn(ctx, "transient failure, reconnecting",
					logger.String("path", path),
					logger.Int("attempt", attempt),
					logger.Error(lastErr))
			}
			c.teardown()
		}

		content, err := c.retrieve(ctx, path)
		if err == nil {
			return content, nil
		}
		if perm, classified := classifyPermanent(err, path); perm {
			return "", classified
		}
		lastErr = err
	}

	metrics.RecordRemoteError("retry_exhausted")
	return "", fmt.Errorf("retrieve %s: %w after %d attempts: %v",
		path, ErrRetryExhausted, c.maxRetries+1, lastErr)
}

// retrieve performs one connect-if-needed plus RETR cycle.
func (c *Client) retrieve(ctx context.Context, path string) (string, error) {
	if err := c.ensureConn(ctx); err != nil {
		return "", err
	}

	resp, err := c.conn.Retr(path)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(resp)
	closeErr := resp.Close()
	if err != nil {
		return "", err
	}
	if closeErr != nil {
		return "", closeErr
	}

	// Line-oriented text responses are reassembled into one trimmed string.
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimSpace(content), nil
}

// ensureConn dials and authenticates the shared handle if absent.
func (c *Client) ensureConn(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}
	conn, err := c.dial(ctx, c.host, c.timeout)
	if err != nil {
		return err
	}
	c.conn = conn
	return nil
}

// teardown closes and forgets the handle so the next attempt starts from a
// fresh connection. Reconnection must fully replace the handle state.
func (c *Client) teardown() {
	if c.conn != nil {
		_ = c.conn.Quit()
		c.conn = nil
	}
}

// Close terminates the connection if one is open.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Quit()
	c.conn = nil
	return err
}

// classifyPermanent distinguishes terminal server responses from transient
// transport faults. Only permanent failures return a non-nil error here;
// everything else is considered recoverable by reconnecting.
func classifyPermanent(err error, path string) (bool, error) {
	var proto *textproto.Error
	if !errors.As(err, &proto) {
		return false, nil
	}
	switch proto.Code {
	case ftp.StatusFileUnavailable:
		metrics.RecordRemoteError("invalid_path")
		return true, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	case ftp.StatusNotLoggedIn:
		metrics.RecordRemoteError("access_disabled")
		return true, fmt.Errorf("%w: server refused %s", ErrAccessDisabled, path)
	}
	if proto.Code >= 500 {
		metrics.RecordRemoteError("permanent")
		return true, fmt.Errorf("retrieve %s: %w", path, err)
	}
	// 4xx replies are transient by protocol definition.
	return false, nil
}
