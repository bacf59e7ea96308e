package statsdc

import "strconv"

// appendLine appends one complete wire line to dst:
//
//	<prefix><name>:<value>|<suffix>[|@<rate>]\n
//
// The sample rate is only emitted when it actually samples (rate < 1).
// Metric names are not escaped; that is the caller's responsibility.
func appendLine(dst []byte, prefix, name, value, suffix string, rate float64) []byte {
	dst = append(dst, prefix...)
	dst = append(dst, name...)
	dst = append(dst, ':')
	dst = append(dst, value...)
	dst = append(dst, '|')
	dst = append(dst, suffix...)
	if rate < 1 {
		dst = append(dst, '|', '@')
		dst = strconv.AppendFloat(dst, rate, 'g', -1, 64)
	}
	dst = append(dst, '\n')
	return dst
}
