package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Filter returns the items of slice that satisfy keep, in order.
func Filter[T any](slice []T, keep func(T) bool) []T {
	out := []T{}
	for _, v := range slice {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func Map[T, U any](slice []T, f func(T) U) []U {
	out := make([]U, len(slice))
	for i, v := range slice {
		out[i] = f(v)
	}
	return out
}
