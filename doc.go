/*
Package statsdc is a small buffered StatsD client.

It encodes counter, gauge, timing, histogram, meter and set readings into the
StatsD text line format and sends them over UDP (default) or TCP to a StatsD
daemon. Several lines are packed into one datagram, bounded by a configurable
maximum packet size. A line which would overflow the buffer triggers a flush
of what is already accumulated first, so a packet never contains a split line.

The client is configured with functional options:

	c, err := statsdc.New(
		statsdc.Peer("127.0.0.1", 8125),
		statsdc.Prefix("myapp."),
		statsdc.AutoFlush(false),
		statsdc.Buffer(1432))
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	c.Increment("requests", 0.1)
	c.Gauge("workers", 17)
	c.SetAdd("users", "alice")

With AutoFlush enabled (the default) every metric call is sent immediately as
its own packet. With it disabled, lines accumulate until the buffer would
overflow, until Flush() is called, or until Close().

Delivery is best effort, as the StatsD protocol intends. A failed send is
reported to the caller but never retried and the buffer is not re-queued.

A Client is not safe for unsynchronized concurrent use. It does no internal
locking; callers sharing a Client between go-routines must synchronize access
themselves. 1432 should be a safe packet size for most nets.
*/
package statsdc
