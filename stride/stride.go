package stride

import (
	"errors"
	"fmt"
)

// Number constrains the element types a sequence product ranges over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Product returns the multiplicative product of seq.
// The empty sequence yields the multiplicative identity, 1.
func Product[T Number](seq []T) T {
	p := T(1)
	for _, v := range seq {
		p *= v
	}
	return p
}

// Shape holds the ordered dimension sizes of an N-dimensional array.
// An empty Shape describes a 0-dimensional (scalar) array.
type Shape []int64

// NumElements returns the total element count, Product of all dimensions.
func (s Shape) NumElements() int64 {
	return Product(s)
}

// Strides holds per-dimension byte offsets between consecutive elements.
// A negative stride represents reversed iteration along that axis.
type Strides []int64

// Span is the minimal byte interval [Start, End) covering every element of a
// strided view, measured from a hypothetical base address 0. Start is
// negative whenever a negative stride widens the interval downward.
type Span struct {
	Start int64
	End   int64
}

// Size returns the width of the interval in bytes.
func (sp Span) Size() int64 {
	return sp.End - sp.Start
}

var (
	// ErrNonContiguous reports a view whose covering span disagrees with the
	// packed size itemsize * product(shape).
	ErrNonContiguous = errors.New("array data is non-contiguous")

	// ErrStrideMismatch reports a strides sequence whose length differs from
	// the shape's.
	ErrStrideMismatch = errors.New("strides do not match shape")
)

// ContiguousSpan returns the minimal byte interval containing every element
// addressed by shape and strides, with itemsize bytes per element.
//
// Empty strides declare a fully packed array: the span is
// [0, itemsize*product(shape)). Otherwise each dimension widens the interval
// by stride*(dim-1) — upward for positive strides, downward for negative
// ones — and a dimension of size 0 collapses the whole span to [0, 0)
// immediately, discarding adjustments made for earlier dimensions.
//
// A computed span whose width differs from the packed size means the strides
// describe gaps or overlaps; ContiguousSpan fails with ErrNonContiguous
// rather than return it.
func ContiguousSpan(shape Shape, strides Strides, itemsize int64) (Span, error) {
	if len(strides) == 0 {
		return Span{Start: 0, End: itemsize * Product(shape)}, nil
	}
	if len(strides) != len(shape) {
		return Span{}, fmt.Errorf("%w: %d strides for %d dimensions",
			ErrStrideMismatch, len(strides), len(shape))
	}

	span := Span{Start: 0, End: itemsize}
	for i, dim := range shape {
		if dim == 0 {
			return Span{}, nil
		}
		switch stride := strides[i]; {
		case stride > 0:
			span.End += stride * (dim - 1)
		case stride < 0:
			span.Start += stride * (dim - 1)
		}
	}

	if packed := itemsize * Product(shape); span.Size() != packed {
		return Span{}, fmt.Errorf("%w: span covers %d bytes, packed size is %d",
			ErrNonContiguous, span.Size(), packed)
	}
	return span, nil
}

// ContiguousStrides returns the packed row-major strides for shape: the last
// axis advances by itemsize, each outer axis by the full byte extent of the
// axes inside it. A 0-dimensional shape has no strides.
func ContiguousStrides(shape Shape, itemsize int64) Strides {
	if len(shape) == 0 {
		return nil
	}
	strides := make(Strides, len(shape))
	strides[len(shape)-1] = itemsize
	for i := len(shape) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}
	return strides
}
