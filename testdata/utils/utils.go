package utils

// Ptr returns a pointer to v. Test helper for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
