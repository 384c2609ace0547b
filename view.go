package holoflow

import "unsafe"

// TensorView pairs a TensorDescriptor with a raw byte region borrowed
// from the caller. It is the typed consumer contract the queue exists to
// serve: a batch handed back by BatchedSPSCQueue is plain bytes, and
// TensorView optionally sits above it to reinterpret that region as a
// strided N-D array of a concrete Go type.
type TensorView struct {
	desc TensorDescriptor
	data []byte
}

// NewTensorView pairs desc with data. data is borrowed, not copied; its
// lifetime must cover every use of the view and of pointers obtained
// through Data.
func NewTensorView(desc TensorDescriptor, data []byte) TensorView {
	return TensorView{desc: desc, data: data}
}

// Desc returns the view's descriptor.
func (v TensorView) Desc() TensorDescriptor { return v.desc }

// Data reinterprets v's backing bytes as *T, where T is the view's
// scalar element type (e.g. Data[float32] for a "float32" descriptor).
// To access more than one element, build a slice over the result with
// unsafe.Slice, using the descriptor's shape to bound it — the same
// pattern the view's own tests use.
//
// Panics if sizeof(T) does not equal v.Desc().TypeSize() — this is a
// contract violation (the caller asked for the wrong type), not flow
// control. The descriptor's TypeName is informational only and is never
// checked against T.
func Data[T any](v TensorView) *T {
	var zero T
	if int(unsafe.Sizeof(zero)) != v.desc.typeSize {
		panic("holoflow: requested type size does not match descriptor type size")
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(v.data)))
}
