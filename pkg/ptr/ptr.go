// Package ptr helps with optional values decoded into pointer fields.
package ptr

// Deref returns *p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	var zero T

	return Or(p, zero)
}

// Or returns *p, or fallback when p is nil.
func Or[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}

	return *p
}

// Of returns a pointer to a copy of v.
func Of[T any](v T) *T { return &v }
