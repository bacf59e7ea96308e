package statsdc

import "fmt"

// record is the buffering engine. It receives one complete encoded line
// and either appends it, or flushes the accumulated packet first so a
// line is never split across packets.
//
// The >= comparisons are deliberate: a packet is kept strictly below the
// configured size, reserving room for the line terminator accounting.
func (c *Client) record(line []byte) error {
	if len(line) >= c.max {
		// This line alone can never fit in one packet.
		if c.strictOversize {
			return fmt.Errorf("%w: %d bytes, max %d", ErrOversize, len(line), c.max)
		}
		c.log.WARN("statsdc: dropping oversize metric line",
			"length", len(line), "max", c.max)
		return nil
	}

	var err error
	if len(c.buf)+len(line) >= c.max {
		err = c.flush()
	}
	c.buf = append(c.buf, line...)

	if c.autoflush {
		if ferr := c.flush(); err == nil {
			err = ferr
		}
	}
	return err
}

// Flush sends the accumulated lines as a single packet. Flushing an empty
// buffer does nothing and touches no socket. The buffer is reset whether or
// not the send succeeds; StatsD delivery is best effort and a persistently
// failing daemon must not make the buffer grow without bound.
func (c *Client) Flush() error {
	return c.flush()
}

func (c *Client) flush() error {
	if len(c.buf) == 0 {
		return nil
	}
	err := c.send(c.buf)
	c.buf = c.buf[:0]
	return err
}
