package statsdc_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/One-com/gone/statsdc"
)

// countingWriter records every individual Write as its own packet.
type countingWriter struct {
	packets [][]byte
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.packets = append(w.packets, append([]byte(nil), p...))
	return len(p), nil
}

func newTestClient(t *testing.T, out *countingWriter, opts ...statsdc.Option) *statsdc.Client {
	t.Helper()
	c, err := statsdc.New(append([]statsdc.Option{statsdc.Output(out)}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestAutoFlushCounter(t *testing.T) {
	out := &countingWriter{}
	c := newTestClient(t, out)

	if err := c.Counter("hits", 5, 1); err != nil {
		t.Fatal(err)
	}
	if len(out.packets) != 1 {
		t.Fatalf("expected exactly one packet, got %d", len(out.packets))
	}
	if string(out.packets[0]) != "hits:5|c\n" {
		t.Errorf("Wrong packet %q", out.packets[0])
	}
}

func TestGaugeDelta(t *testing.T) {
	out := &countingWriter{}
	c := newTestClient(t, out)

	if err := c.Gauge("mem", "+10"); err != nil {
		t.Fatal(err)
	}
	if err := c.Gauge("mem", "-3"); err != nil {
		t.Fatal(err)
	}
	if err := c.Gauge("mem", 17); err != nil {
		t.Fatal(err)
	}
	got := string(bytes.Join(out.packets, nil))
	if got != "mem:+10|g\nmem:-3|g\nmem:17|g\n" {
		t.Errorf("Wrong output %q", got)
	}
}

func TestSetAdd(t *testing.T) {
	out := &countingWriter{}
	c := newTestClient(t, out)

	if err := c.SetAdd("users", "alice"); err != nil {
		t.Fatal(err)
	}
	if len(out.packets) != 1 || string(out.packets[0]) != "users:alice|s\n" {
		t.Errorf("Wrong output %v", out.packets)
	}
}

func TestPrefixAndSampleRate(t *testing.T) {
	out := &countingWriter{}
	c := newTestClient(t, out, statsdc.Prefix("pfx."))

	if err := c.Increment("requests", 0.1); err != nil {
		t.Fatal(err)
	}
	if err := c.Decrement("requests", 1); err != nil {
		t.Fatal(err)
	}
	got := string(bytes.Join(out.packets, nil))
	if got != "pfx.requests:1|c|@0.1\npfx.requests:-1|c\n" {
		t.Errorf("Wrong output %q", got)
	}
}

func TestLegacyAliases(t *testing.T) {
	out := &countingWriter{}
	c := newTestClient(t, out)

	if err := c.Update("jobs", 3, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.TimingMS("rt", 42, 1); err != nil {
		t.Fatal(err)
	}
	got := string(bytes.Join(out.packets, nil))
	if got != "jobs:3|c\nrt:42|ms\n" {
		t.Errorf("Wrong output %q", got)
	}
}

func TestDuration(t *testing.T) {
	out := &countingWriter{}
	c := newTestClient(t, out)

	if err := c.Duration("rt", 10*time.Millisecond, 1); err != nil {
		t.Fatal(err)
	}
	if got := string(bytes.Join(out.packets, nil)); got != "rt:10|ms\n" {
		t.Errorf("Wrong output %q", got)
	}
}

func TestMeterAndHistogram(t *testing.T) {
	out := &countingWriter{}
	c := newTestClient(t, out)

	if err := c.Meter("events", 2); err != nil {
		t.Fatal(err)
	}
	if err := c.Histogram("size", 123.5); err != nil {
		t.Fatal(err)
	}
	got := string(bytes.Join(out.packets, nil))
	if got != "events:2|m\nsize:123.5|h\n" {
		t.Errorf("Wrong output %q", got)
	}
}

func TestCloseFlushesOnce(t *testing.T) {
	out := &countingWriter{}
	c := newTestClient(t, out, statsdc.AutoFlush(false))

	if err := c.Counter("a", 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.Counter("b", 2, 1); err != nil {
		t.Fatal(err)
	}
	if len(out.packets) != 0 {
		t.Fatalf("nothing should be sent before Close, got %v", out.packets)
	}

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if len(out.packets) != 1 {
		t.Fatalf("Close should flush exactly once, got %d packets", len(out.packets))
	}
	if string(out.packets[0]) != "a:1|c\nb:2|c\n" {
		t.Errorf("Wrong packet %q", out.packets[0])
	}

	// Second Close is a no-op.
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if len(out.packets) != 1 {
		t.Errorf("second Close must not send, got %d packets", len(out.packets))
	}
}

func TestValidationErrors(t *testing.T) {
	out := &countingWriter{}
	c := newTestClient(t, out)

	cases := []error{
		c.Gauge("mem", -1),
		c.Counter("hits", 1, 1.5),
		c.Counter("hits", 1, -0.5),
		c.Record(statsdc.KindHistogram, "size", 1, 0.5),
		c.Record(statsdc.KindCounter, "hits", 1.5, 1),
		c.Record(statsdc.KindMeter, "events", -1, 1),
		c.Timing("rt", -10, 1),
		c.Record(statsdc.Kind(42), "x", 1, 1),
	}
	for i, err := range cases {
		if !errors.Is(err, statsdc.ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
	if len(out.packets) != 0 {
		t.Errorf("rejected values must not be sent, got %v", out.packets)
	}
}

func TestConfigurationErrors(t *testing.T) {
	cases := [][]statsdc.Option{
		{statsdc.Peer("", 8125)},
		{statsdc.Peer("localhost", -1)},
		{statsdc.Peer("localhost", 65536)},
		{statsdc.Proto("unix")},
		{statsdc.Buffer(0)},
		{statsdc.Logger(nil)},
	}
	for i, opts := range cases {
		_, err := statsdc.New(opts...)
		if !errors.Is(err, statsdc.ErrConfiguration) {
			t.Errorf("case %d: expected ErrConfiguration, got %v", i, err)
		}
	}
}

func ExampleNew() {
	out := &bytes.Buffer{}

	c, err := statsdc.New(
		statsdc.Output(out),
		statsdc.Prefix("prefix."),
		statsdc.AutoFlush(false),
		statsdc.Buffer(512))
	if err != nil {
		fmt.Println(err)
		return
	}

	c.Increment("requests", 1)
	c.Gauge("workers", 17)
	c.Gauge("queue", "+2")
	c.Duration("rt", 250*time.Millisecond, 1)
	c.SetAdd("users", "alice")
	c.Close()

	fmt.Print(out.String())
	// Output:
	// prefix.requests:1|c
	// prefix.workers:17|g
	// prefix.queue:+2|g
	// prefix.rt:250|ms
	// prefix.users:alice|s
}
