package util

// BoolToInt maps a flag to its SQLite integer form.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IntToBool maps a SQLite integer column back to a flag.
func IntToBool(i int) bool {
	return i != 0
}

// Ptr returns a pointer to v. Used to build optional fields, parent task
// ids in particular, from literals.
func Ptr[T any](v T) *T {
	return &v
}
