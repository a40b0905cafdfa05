package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// Contents beyond the reused prefix are unspecified.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Zero sets all values in buf to the zero value of T.
func Zero[T any](buf []T) {
	clear(buf)
}
