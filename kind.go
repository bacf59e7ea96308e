package statsdc

// Kind identifies a StatsD metric kind.
// Gauge: a client side maintained value, set absolutely or adjusted by deltas
// Counter: a server side maintained tally of increments
// Timing: a series of millisecond measurements analyzed on the server
// Histogram: ... when the measurements are not milliseconds
// Meter: a server side maintained rate of events
// Set: free form strings counted for uniqueness on the server
type Kind int

const (
	KindCounter Kind = iota
	KindGauge
	KindTiming
	KindHistogram
	KindMeter
	KindSet
)

// kindSpec drives the generic Record dispatch: the wire suffix token,
// whether the kind accepts a sample rate, and the function canonicalizing
// a raw value to its wire string.
type kindSpec struct {
	suffix string
	rated  bool
	canon  func(value interface{}) (string, error)
}

var kinds = [...]kindSpec{
	KindCounter:   {suffix: "c", rated: true, canon: canonInteger},
	KindGauge:     {suffix: "g", canon: canonGauge},
	KindTiming:    {suffix: "ms", rated: true, canon: canonNonNegNumber},
	KindHistogram: {suffix: "h", canon: canonNonNegNumber},
	KindMeter:     {suffix: "m", canon: canonNonNegInteger},
	KindSet:       {suffix: "s", canon: canonString},
}

// KindOfToken maps a wire suffix token back to its Kind.
func KindOfToken(token string) (Kind, bool) {
	for k, spec := range kinds {
		if spec.suffix == token {
			return Kind(k), true
		}
	}
	return 0, false
}

// Token returns the wire suffix token for the kind ("c", "g", "ms", ...).
func (k Kind) Token() string {
	if k < 0 || int(k) >= len(kinds) {
		return ""
	}
	return kinds[k].suffix
}

func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	case KindTiming:
		return "timing"
	case KindHistogram:
		return "histogram"
	case KindMeter:
		return "meter"
	case KindSet:
		return "set"
	}
	return "unknown"
}
