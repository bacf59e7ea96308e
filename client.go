package statsdc

import (
	"io"
	"runtime"
	"time"

	"github.com/One-com/gone/log"
)

const (
	defaultAddr = "127.0.0.1:8125"
	defaultMax  = 512
)

// Client is a StatsD client owning a packet buffer and a lazily dialed
// socket. Create it with New, stop it with Close. It is not safe for
// unsynchronized concurrent use.
type Client struct {
	addr      string
	proto     string
	prefix    string
	autoflush bool
	max       int

	strictOversize bool

	buf     []byte
	scratch []byte

	conn interface{ Close() error }
	out  io.Writer

	closed bool

	log *log.Logger
}

// New creates a Client. Without options it sends every metric immediately
// as its own UDP packet to 127.0.0.1:8125.
func New(opts ...Option) (c *Client, err error) {
	c = &Client{
		addr:      defaultAddr,
		proto:     "udp",
		autoflush: true,
		max:       defaultMax,
		log:       log.Default(),
	}
	for _, o := range opts {
		err = o(c)
		if err != nil {
			return nil, err
		}
	}
	c.buf = make([]byte, 0, c.max)

	// Safety net for clients never Close()'d. Explicit Close is the
	// supported path; finalizers may not run at process exit at all.
	runtime.SetFinalizer(c, (*Client).teardown)
	return c, nil
}

// Record validates, encodes and buffers one metric reading. It is the
// generic entry point behind all the per-kind methods. A rate of 1 means
// unsampled.
func (c *Client) Record(k Kind, name string, value interface{}, rate float64) error {
	wire, err := canonical(k, value)
	if err != nil {
		return err
	}
	if err = checkRate(k, rate); err != nil {
		return err
	}
	c.scratch = appendLine(c.scratch[:0], c.prefix, name, wire, kinds[k].suffix, rate)
	return c.record(c.scratch)
}

// Counter adjusts a server side maintained tally by value.
func (c *Client) Counter(name string, value int64, rate float64) error {
	return c.Record(KindCounter, name, value, rate)
}

// Increment is Counter(name, 1, rate).
func (c *Client) Increment(name string, rate float64) error {
	return c.Counter(name, 1, rate)
}

// Decrement is Counter(name, -1, rate).
func (c *Client) Decrement(name string, rate float64) error {
	return c.Counter(name, -1, rate)
}

// Update is a legacy alias for Counter.
func (c *Client) Update(name string, value int64, rate float64) error {
	return c.Counter(name, value, rate)
}

// Gauge sets a gauge to a non-negative integer value, or adjusts it when
// value is a delta string like "+10" or "-3".
func (c *Client) Gauge(name string, value interface{}) error {
	return c.Record(KindGauge, name, value, 1)
}

// Timing records a duration measurement in milliseconds.
func (c *Client) Timing(name string, ms float64, rate float64) error {
	return c.Record(KindTiming, name, ms, rate)
}

// TimingMS is a legacy alias for Timing.
func (c *Client) TimingMS(name string, ms float64, rate float64) error {
	return c.Timing(name, ms, rate)
}

// Duration records a time.Duration as a timing, in milliseconds.
func (c *Client) Duration(name string, d time.Duration, rate float64) error {
	return c.Timing(name, float64(d.Nanoseconds())/1e6, rate)
}

// Histogram records an arbitrary sample value for server side distribution
// analysis.
func (c *Client) Histogram(name string, value float64) error {
	return c.Record(KindHistogram, name, value, 1)
}

// Meter marks value events on a server side maintained event rate.
func (c *Client) Meter(name string, value uint64) error {
	return c.Record(KindMeter, name, value, 1)
}

// SetAdd records member (a username, an IP, ...) in a server side
// maintained uniqueness set.
func (c *Client) SetAdd(name string, member string) error {
	return c.Record(KindSet, name, member, 1)
}

// Close flushes any buffered lines and releases the socket. It is
// idempotent; only the first call flushes.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	runtime.SetFinalizer(c, nil)

	err := c.flush()
	if c.conn != nil {
		if cerr := c.conn.Close(); err == nil {
			err = cerr
		}
		c.conn = nil
	}
	c.buf = nil
	c.out = nil
	return err
}

// teardown is the finalizer fallback for a Client never Close()'d.
// Send failures cannot be reported to anyone at this point; log and move on.
func (c *Client) teardown() {
	if err := c.Close(); err != nil {
		c.log.WARN("statsdc: flush at teardown failed", "error", err)
	}
}
