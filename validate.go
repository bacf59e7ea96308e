package statsdc

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cast"
)

// noTypeCheck disables the per-kind domain checks process-wide.
// Read once at startup; values are then passed through as-is for speed.
var noTypeCheck = cast.ToBool(os.Getenv("STATSD_NO_TYPECHECK"))

// canonical coerces a raw value to its wire string for the given kind,
// or fails with ErrValidation.
func canonical(k Kind, value interface{}) (string, error) {
	if k < 0 || int(k) >= len(kinds) {
		return "", fmt.Errorf("%w: unknown metric kind %d", ErrValidation, int(k))
	}
	if noTypeCheck {
		return cast.ToString(value), nil
	}
	s, err := kinds[k].canon(value)
	if err != nil {
		return "", fmt.Errorf("%w: %s value %v: %v", ErrValidation, k, value, err)
	}
	return s, nil
}

// checkRate validates a sample rate against the kind accepting it.
// A rate of 1 means "unsampled" and is valid for every kind.
func checkRate(k Kind, rate float64) error {
	if noTypeCheck {
		return nil
	}
	if rate < 0 || rate > 1 || math.IsNaN(rate) {
		return fmt.Errorf("%w: sample rate %v not in [0,1]", ErrValidation, rate)
	}
	if rate < 1 && !kinds[k].rated {
		return fmt.Errorf("%w: %s does not accept a sample rate", ErrValidation, k)
	}
	return nil
}

// canonInteger accepts any integer, of any sign.
func canonInteger(value interface{}) (string, error) {
	if err := rejectFractional(value); err != nil {
		return "", err
	}
	n, err := cast.ToInt64E(value)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

// canonNonNegInteger accepts integers >= 0.
func canonNonNegInteger(value interface{}) (string, error) {
	if err := rejectFractional(value); err != nil {
		return "", err
	}
	n, err := cast.ToUint64E(value)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(n, 10), nil
}

// canonGauge accepts a non-negative integer, or a signed delta string of the
// form "+N"/"-N" which is kept verbatim so the daemon sees the sign.
// A plain negative integer is ambiguous with the decrement encoding and is
// rejected.
func canonGauge(value interface{}) (string, error) {
	if s, ok := value.(string); ok && isDelta(s) {
		return s, nil
	}
	return canonNonNegInteger(value)
}

// canonNonNegNumber accepts any finite number >= 0, fractions allowed.
func canonNonNegNumber(value interface{}) (string, error) {
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return "", err
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("not a non-negative finite number")
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// canonString accepts anything cast can render. Set members are opaque.
func canonString(value interface{}) (string, error) {
	return cast.ToStringE(value)
}

// isDelta reports whether s matches [+-]<digits>.
func isDelta(s string) bool {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// rejectFractional catches float values which would silently truncate
// when coerced to an integer kind.
func rejectFractional(value interface{}) error {
	switch f := value.(type) {
	case float64:
		if f != math.Trunc(f) {
			return fmt.Errorf("not an integer")
		}
	case float32:
		if float64(f) != math.Trunc(float64(f)) {
			return fmt.Errorf("not an integer")
		}
	}
	return nil
}
