// Package stride computes byte-level geometry of N-dimensional strided
// array views.
//
// A strided view addresses its elements through a shape (dimension sizes)
// and strides (byte offsets per unit step along each dimension, possibly
// negative for reversed axes). Before a columnar buffer can be handed to
// bulk contiguous-memory operations — zero-copy slicing, wrapping foreign
// buffers — the view's minimal covering byte interval must be known, and a
// view mis-declared as contiguous must be rejected rather than silently
// read with gaps or overlaps.
//
// ContiguousSpan is that check: it returns the minimal [Start, End) byte
// interval containing every element offset, and fails when the interval's
// width disagrees with the packed size itemsize * product(shape).
// ContiguousStrides is its constructive companion, producing the packed
// row-major strides for a shape.
package stride
