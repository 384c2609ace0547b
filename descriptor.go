package holoflow

import "slices"

// TensorDescriptor is immutable metadata describing a strided N-D array of
// a named scalar type. It validates shape/stride compatibility once, at
// construction, and never changes afterward.
type TensorDescriptor struct {
	typeName string
	typeSize int
	shape    []int
	strides  []int
}

// NewTensorDescriptor constructs a TensorDescriptor for an array of the
// given type, shape and strides.
//
// Panics if len(shape) != len(strides), or if the strides are not large
// enough to hold the shape: strides[last] must be >= typeSize, and for
// every i from len-2 down to 0, strides[i] must be >= shape[i+1]*strides[i+1].
// These are contract violations, not flow control, so they are fatal
// rather than reported through an error return.
func NewTensorDescriptor(typeName string, typeSize int, shape, strides []int) TensorDescriptor {
	if len(shape) != len(strides) {
		panic("holoflow: shape and strides must have the same number of dimensions")
	}

	d := TensorDescriptor{
		typeName: typeName,
		typeSize: typeSize,
		shape:    slices.Clone(shape),
		strides:  slices.Clone(strides),
	}

	if len(d.shape) == 0 {
		return d
	}

	last := len(d.shape) - 1
	if d.strides[last] < typeSize {
		panic("holoflow: stride is not big enough to hold elements")
	}
	for i := last - 1; i >= 0; i-- {
		if d.strides[i] < d.shape[i+1]*d.strides[i+1] {
			panic("holoflow: stride is not big enough to hold elements")
		}
	}
	return d
}

// TypeName returns the name of the descriptor's scalar type (e.g. "float").
// It is informational only; holoflow never validates it against a Go type.
func (d TensorDescriptor) TypeName() string { return d.typeName }

// TypeSize returns the byte size of the descriptor's scalar type.
func (d TensorDescriptor) TypeSize() int { return d.typeSize }

// Shape returns the dimension sizes, outermost first.
func (d TensorDescriptor) Shape() []int { return slices.Clone(d.shape) }

// Strides returns the per-dimension byte strides, outermost first.
func (d TensorDescriptor) Strides() []int { return slices.Clone(d.strides) }

// SizeInBytes returns the total byte footprint of the array described by
// d: shape[0]*strides[0], or 0 if d describes a rank-0 (scalar) array.
func (d TensorDescriptor) SizeInBytes() int {
	if len(d.shape) == 0 {
		return 0
	}
	return d.shape[0] * d.strides[0]
}

// Equal reports whether d and other describe the same logical array:
// same type name, type size, and shape. Strides are deliberately excluded
// — they describe memory layout, not logical identity, so two
// descriptors of the same array with different strides compare equal.
func (d TensorDescriptor) Equal(other TensorDescriptor) bool {
	return d.typeName == other.typeName &&
		d.typeSize == other.typeSize &&
		slices.Equal(d.shape, other.shape)
}
