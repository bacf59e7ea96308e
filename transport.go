package statsdc

import (
	"fmt"
	"net"
	"time"
)

const dialTimeout = time.Second

// send writes one packet to the peer, dialing the socket on first use.
// A datagram socket needs no handshake; a stream socket connects once and
// is reused. Failures are reported but nothing is retried or re-queued.
func (c *Client) send(p []byte) error {
	if c.out == nil {
		conn, err := net.DialTimeout(c.proto, c.addr, dialTimeout)
		if err != nil {
			return fmt.Errorf("%w: dial %s %s: %v", ErrTransport, c.proto, c.addr, err)
		}
		c.conn = conn
		c.out = conn
	}
	if _, err := c.out.Write(p); err != nil {
		return fmt.Errorf("%w: write: %v", ErrTransport, err)
	}
	return nil
}
