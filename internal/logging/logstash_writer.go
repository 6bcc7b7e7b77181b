package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	defaultDialTimeout   = 2 * time.Second
	defaultWriteTimeout  = time.Second
	defaultRetryInterval = 5 * time.Second
)

var errRetryCooldown = errors.New("logstash: retry cooldown in effect")

// LogstashWriter mirrors log lines to a Logstash TCP input without ever
// blocking the caller. It keeps one connection open and drops writes while
// Logstash is unreachable, retrying after a cool-down window.
type LogstashWriter struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

// NewLogstashWriter returns a writer safe for concurrent use.
func NewLogstashWriter(addr string) (*LogstashWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}
	return &LogstashWriter{
		addr:          addr,
		dialTimeout:   defaultDialTimeout,
		writeTimeout:  defaultWriteTimeout,
		retryInterval: defaultRetryInterval,
	}, nil
}

// Write implements io.Writer. Delivery is best effort: while Logstash is down
// the payload is dropped and the write still reports success so logging never
// stalls request handling.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	data := make([]byte, len(p))
	copy(data, p)
	if data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}

	if err := w.ensureConnLocked(); err != nil {
		return len(p), nil
	}

	if w.writeTimeout > 0 {
		_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	}

	if _, err := w.conn.Write(data); err != nil {
		w.closeConnLocked()
		w.nextRetry = time.Now().Add(w.retryInterval)
		return len(p), nil
	}

	return len(p), nil
}

// Close tears down the underlying TCP connection.
func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.closeConnLocked()
}

func (w *LogstashWriter) ensureConnLocked() error {
	if w.conn != nil {
		return nil
	}

	now := time.Now()
	if !w.nextRetry.IsZero() && now.Before(w.nextRetry) {
		return errRetryCooldown
	}

	conn, err := net.DialTimeout("tcp", w.addr, w.dialTimeout)
	if err != nil {
		w.nextRetry = now.Add(w.retryInterval)
		return err
	}

	w.conn = conn
	w.nextRetry = time.Time{}
	return nil
}

func (w *LogstashWriter) closeConnLocked() error {
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}
