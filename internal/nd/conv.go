//go:build !ndnoconv

package nd

// Uint converts a rank-1 coordinate to its sole component.
func Uint(id ID[R1]) uint { return id.v[0] }

// EqualUint reports whether the sole component of id equals s.
func EqualUint(id ID[R1], s uint) bool { return id.v[0] == s }

func NotEqualUint(id ID[R1], s uint) bool { return id.v[0] != s }
