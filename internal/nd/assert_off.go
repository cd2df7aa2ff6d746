//go:build !ndassert

package nd

const checkBounds = false
