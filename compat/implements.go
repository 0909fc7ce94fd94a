package compat

// Fn pairs a callable with documentation a caller can introspect at runtime.
// Compatibility shims carry the documentation of the function they stand in
// for rather than their own.
type Fn[F any] struct {
	Doc  string
	Call F
}

// Implements returns a decorator that copies src's documentation onto the
// decorated callable and returns it otherwise unchanged.
func Implements[F, G any](src Fn[F]) func(Fn[G]) Fn[G] {
	return func(g Fn[G]) Fn[G] {
		g.Doc = src.Doc
		return g
	}
}
