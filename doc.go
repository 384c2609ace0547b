// Package holoflow provides a lock-free, batched single-producer
// single-consumer ring buffer for streaming fixed-size element slots
// between exactly two goroutines, plus a tensor descriptor/view pair
// for interpreting a slot's bytes as a strided N-D array.
//
// # Quick Start
//
//	storage := make([]byte, 100) // nb_slots=100, elem_size=1
//	q := holoflow.NewBatchedSPSCQueue(100, 1, 1, 1, storage)
//
//	// Producer
//	if batch, ok := q.WritePtr(); ok {
//	    batch[0] = 0x2A
//	    q.CommitWrite()
//	}
//
//	// Consumer
//	if batch, ok := q.ReadPtr(); ok {
//	    fmt.Println(batch[0])
//	    q.CommitRead()
//	}
//
// # Batch Contiguity
//
// The producer and consumer may use independent batch sizes (enqBatch
// and deqBatch), each required to divide nbSlots. Because of that
// constraint, a batch returned by WritePtr or ReadPtr is always
// contiguous: it never straddles the nbSlots -> 0 wrap. Downstream code
// can treat a batch as a single logical buffer — for example, a larger
// tensor tile — with no staging copy.
//
// # Thread Safety
//
// Exactly one goroutine must call WritePtr/CommitWrite, and exactly one
// (possibly different) goroutine must call ReadPtr/CommitRead, for the
// lifetime of the queue. Violating this is undefined behavior: the
// contract is documented, not enforced at runtime, to keep the fast path
// free of locks, CAS, and bounds-checked role dispatch.
//
// # Backpressure
//
// WritePtr and ReadPtr never block: a full queue or an empty queue is
// reported as (nil, false), not an error. Callers that need to wait
// should spin, yield, or back off externally — for example with
// [code.hybscloud.com/iox]'s Backoff:
//
//	backoff := iox.Backoff{}
//	batch, ok := q.WritePtr()
//	for !ok {
//	    backoff.Wait()
//	    batch, ok = q.WritePtr()
//	}
//	// ... write into batch ...
//	q.CommitWrite()
//
// # Memory Ordering
//
// The queue's two indices are [code.hybscloud.com/atomix] atomics with
// explicit ordering: each side loads its own index relaxed and the
// peer's index acquire, and stores its own index release. The acquire on
// the peer's index pairs with the peer's release on commit, establishing
// a happens-before edge from the peer's prior writes/reads of a slot to
// this side's subsequent access of that same slot. No fences, locks, or
// CAS are required beyond that pairing.
//
// # Tensor Descriptor and View
//
// TensorDescriptor is immutable metadata describing a strided N-D array
// of a named scalar type; TensorView pairs a descriptor with a borrowed
// byte region and reinterprets it as a concrete Go type via the
// package-level generic function Data:
//
//	desc := holoflow.NewTensorDescriptor("float32", 4, []int{4, 4}, []int{16, 4})
//	view := holoflow.NewTensorView(desc, batch)
//	row0 := unsafe.Slice(holoflow.Data[float32](view), desc.Shape()[1])
//
// TensorDescriptor equality intentionally ignores strides: strides
// describe memory layout, while equality describes logical identity of
// the array.
//
// # Contract Violations
//
// Invalid construction parameters (a stride too small for its shape, a
// batch size that does not divide nbSlots, storage too small for
// nbSlots*elemSize) and a type-size mismatch in Data panic rather than
// returning an error. These indicate a programming bug, not a runtime
// condition, so there is nothing meaningful to recover from.
package holoflow
