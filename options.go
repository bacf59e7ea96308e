package statsdc

import (
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/One-com/gone/log"
)

// Option is a configuration option for a Client, passed to New.
type Option func(*Client) error

// Peer sets the address of the StatsD daemon. Default is 127.0.0.1:8125.
func Peer(host string, port int) Option {
	return func(c *Client) error {
		if host == "" {
			return fmt.Errorf("%w: empty host", ErrConfiguration)
		}
		if port < 0 || port > 65535 {
			return fmt.Errorf("%w: port %d out of range", ErrConfiguration, port)
		}
		c.addr = net.JoinHostPort(host, strconv.Itoa(port))
		return nil
	}
}

// Proto selects the transport protocol, "udp" (default) or "tcp".
func Proto(proto string) Option {
	return func(c *Client) error {
		if proto != "udp" && proto != "tcp" {
			return fmt.Errorf("%w: unsupported protocol %q", ErrConfiguration, proto)
		}
		c.proto = proto
		return nil
	}
}

// Prefix is prepended verbatim to every metric name, including any
// separator you want ("myapp." rather than "myapp").
func Prefix(pfx string) Option {
	return func(c *Client) error {
		c.prefix = pfx
		return nil
	}
}

// AutoFlush controls whether every metric call is sent immediately as its
// own packet (the default), or accumulated into Buffer-sized packets.
func AutoFlush(on bool) Option {
	return func(c *Client) error {
		c.autoflush = on
		return nil
	}
}

// Buffer sets the packet size with which writes to the underlying socket
// (often an UDPConn) are done. Default 512. 1432 should be a safe size for
// most nets.
func Buffer(size int) Option {
	return func(c *Client) error {
		if size <= 0 {
			return fmt.Errorf("%w: buffer size %d not positive", ErrConfiguration, size)
		}
		c.max = size
		return nil
	}
}

// Output sets a general io.Writer as output instead of dialing a socket.
func Output(w io.Writer) Option {
	return func(c *Client) error {
		c.out = w
		return nil
	}
}

// Logger sets the logger used for dropped-line warnings and swallowed
// teardown failures. Defaults to the gonelog default logger.
func Logger(l *log.Logger) Option {
	return func(c *Client) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", ErrConfiguration)
		}
		c.log = l
		return nil
	}
}

// StrictOversize makes a metric call fail with ErrOversize when a single
// encoded line can never fit in one packet, instead of logging and
// dropping the line.
func StrictOversize() Option {
	return func(c *Client) error {
		c.strictOversize = true
		return nil
	}
}
