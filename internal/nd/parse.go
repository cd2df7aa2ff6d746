package nd

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseComponents parses "4,5", "4x5", "4 5" or "(4, 5)" into 1 to
// MaxDims components. Empty components such as "4,,5" are rejected.
func ParseComponents(s string) ([]uint, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.ReplaceAll(s, "x", ",")

	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(s, ",")
	} else {
		fields = strings.Fields(s)
	}
	if len(fields) == 0 || len(fields) > MaxDims {
		return nil, fmt.Errorf("%w: %q has %d components, want 1 to %d", ErrDimensionMismatch, s, len(fields), MaxDims)
	}

	out := make([]uint, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, fmt.Errorf("nd: component %d of %q is empty", i, s)
		}
		v, err := strconv.ParseUint(f, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("nd: component %d of %q: %w", i, s, err)
		}
		out[i] = uint(v)
	}
	return out, nil
}
