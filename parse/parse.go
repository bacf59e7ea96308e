// Package parse decodes single StatsD wire format lines, as produced by
// the statsdc client. It exists for tests and for debugging captured
// packets; it is not a full StatsD server parser.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/One-com/gone/statsdc"
)

// Metric is one decoded wire line.
type Metric struct {
	Name  string
	Kind  statsdc.Kind
	Value string
	Rate  float64 // 1 when the line carries no sample rate
}

// ErrMalformed is wrapped around every parse failure.
var ErrMalformed = errors.New("malformed statsd line")

// Line decodes one wire line of the form
//
//	<name>:<value>|<type>[|@<rate>]
//
// with or without the trailing newline. Embedded newlines are rejected;
// a packet holds one metric per line, split it before calling Line.
func Line(p []byte) (Metric, error) {
	var m Metric

	if n := len(p); n > 0 && p[n-1] == '\n' {
		p = p[:n-1]
	}
	if bytes.IndexByte(p, '\n') != -1 {
		return m, fmt.Errorf("%w: embedded newline", ErrMalformed)
	}

	colon := bytes.IndexByte(p, ':')
	if colon < 1 {
		return m, fmt.Errorf("%w: missing name or ':'", ErrMalformed)
	}
	m.Name = string(p[:colon])
	rest := p[colon+1:]

	pipe := bytes.IndexByte(rest, '|')
	if pipe < 1 {
		return m, fmt.Errorf("%w: missing value or '|'", ErrMalformed)
	}
	m.Value = string(rest[:pipe])
	rest = rest[pipe+1:]

	token := rest
	m.Rate = 1
	if at := bytes.IndexByte(rest, '|'); at != -1 {
		token = rest[:at]
		tail := rest[at+1:]
		if len(tail) < 2 || tail[0] != '@' {
			return m, fmt.Errorf("%w: bad sample rate field", ErrMalformed)
		}
		rate, err := strconv.ParseFloat(string(tail[1:]), 64)
		if err != nil {
			return m, fmt.Errorf("%w: bad sample rate: %v", ErrMalformed, err)
		}
		if rate < 0 || rate > 1 {
			return m, fmt.Errorf("%w: sample rate %v not in [0,1]", ErrMalformed, rate)
		}
		m.Rate = rate
	}

	kind, ok := statsdc.KindOfToken(string(token))
	if !ok {
		return m, fmt.Errorf("%w: unknown type token %q", ErrMalformed, token)
	}
	m.Kind = kind

	return m, nil
}

// Packet decodes a whole packet of newline separated lines.
func Packet(p []byte) ([]Metric, error) {
	var out []Metric
	for len(p) > 0 {
		nl := bytes.IndexByte(p, '\n')
		if nl == -1 {
			nl = len(p) - 1
		}
		m, err := Line(p[:nl+1])
		if err != nil {
			return out, err
		}
		out = append(out, m)
		p = p[nl+1:]
	}
	return out, nil
}
