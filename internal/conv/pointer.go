package conv

// Pointer returns a pointer to a copy of value.
func Pointer[T any](value T) *T {
	return &value
}

// Dereference returns the value ptr points to, or the zero value for nil.
func Dereference[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}

// IsTrue reports whether an optional flag is set and true.
func IsTrue(flag *bool) bool {
	return flag != nil && *flag
}
