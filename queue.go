package holoflow

import (
	"code.hybscloud.com/atomix"

	"github.com/holoflow-digital/holoflow/internal/cacheline"
)

// BatchedSPSCQueue is a lock-free, single-producer single-consumer ring
// buffer of fixed-size element slots, batched independently on the
// producer and consumer sides.
//
// Unlike a plain Lamport ring buffer, the producer may commit enq_batch
// slots at a time and the consumer deq_batch slots at a time, and every
// batch handed back by WritePtr or ReadPtr is guaranteed contiguous: it
// never straddles the nb_slots -> 0 wrap, because both batch sizes must
// divide nb_slots. This lets the caller treat a batch as a single
// contiguous region (e.g. a tensor tile) with no staging copy.
//
// Cross-thread visibility is established solely by the acquire/release
// pairing on writeIdx and readIdx (see WritePtr/CommitWrite/ReadPtr/
// CommitRead); there are no locks, no CAS, and no internal spin-wait.
// Exactly one goroutine must call the producer methods and exactly one
// (possibly different) goroutine must call the consumer methods for the
// lifetime of the queue; violating this is undefined behavior.
type BatchedSPSCQueue struct {
	_        cacheline.Pad
	writeIdx atomix.Uint64 // next slot the producer will write
	_        cacheline.Pad
	readIdx  atomix.Uint64 // next slot the consumer will read
	_        cacheline.Pad

	nbSlots  uint64
	enqBatch uint64
	deqBatch uint64
	elemSize uint64
	storage  []byte
}

// NewBatchedSPSCQueue constructs a queue over nbSlots fixed-size slots of
// elemSize bytes each, with the producer committing enqBatch slots at a
// time and the consumer committing deqBatch slots at a time.
//
// storage is borrowed, not copied: it must hold at least
// nbSlots*elemSize bytes and must outlive the queue. The caller retains
// ownership.
//
// Panics if enqBatch, deqBatch or elemSize is less than 1, if nbSlots is
// not a multiple of both enqBatch and deqBatch, or if storage is too
// small. These are construction-time contract violations, not flow
// control, so they are fatal rather than reported through the return
// value.
func NewBatchedSPSCQueue(nbSlots, enqBatch, deqBatch, elemSize int, storage []byte) *BatchedSPSCQueue {
	if enqBatch < 1 || deqBatch < 1 || elemSize < 1 {
		panic("holoflow: enq_batch, deq_batch and elem_size must each be >= 1")
	}
	if nbSlots%enqBatch != 0 || nbSlots%deqBatch != 0 {
		panic("holoflow: nb_slots must be a multiple of both enq_batch and deq_batch")
	}
	if len(storage) < nbSlots*elemSize {
		panic("holoflow: storage must hold at least nb_slots*elem_size bytes")
	}
	return &BatchedSPSCQueue{
		nbSlots:  uint64(nbSlots),
		enqBatch: uint64(enqBatch),
		deqBatch: uint64(deqBatch),
		elemSize: uint64(elemSize),
		storage:  storage,
	}
}

// WritePtr returns the first enqBatch*elemSize bytes of the next batch to
// be written, producer-thread only. ok is false if the queue cannot
// accept a full batch right now; this is a normal, expected outcome, not
// an error. Calling WritePtr again after a false result is idempotent
// and has no side effects.
//
// The returned slice aliases the queue's storage and is valid to write
// to only until CommitWrite is called (or the producer abandons it
// without committing, which silently cancels the batch). It must not be
// used afterward.
func (q *BatchedSPSCQueue) WritePtr() (batch []byte, ok bool) {
	writeIdx := q.writeIdx.LoadRelaxed()
	readIdx := q.readIdx.LoadAcquire()

	if q.nbSlots-occupancy(writeIdx, readIdx, q.nbSlots) < q.enqBatch+1 {
		return nil, false
	}
	start := writeIdx * q.elemSize
	return q.storage[start : start+q.enqBatch*q.elemSize], true
}

// CommitWrite publishes the batch most recently returned by WritePtr,
// advancing writeIdx by enqBatch slots modulo nbSlots. Must be preceded
// by a successful WritePtr call with no intervening producer call.
// After this call, the slice returned by that WritePtr must not be used.
func (q *BatchedSPSCQueue) CommitWrite() {
	writeIdx := q.writeIdx.LoadRelaxed()
	q.writeIdx.StoreRelease(advance(writeIdx, q.enqBatch, q.nbSlots))
}

// ReadPtr returns the first deqBatch*elemSize bytes of the next batch to
// be read, consumer-thread only. ok is false if fewer than deqBatch
// elements are available; this is a normal, expected outcome, not an
// error.
//
// The returned slice aliases the queue's storage and is valid to read
// from only until CommitRead is called. It must not be used afterward.
func (q *BatchedSPSCQueue) ReadPtr() (batch []byte, ok bool) {
	writeIdx := q.writeIdx.LoadAcquire()
	readIdx := q.readIdx.LoadRelaxed()

	if occupancy(writeIdx, readIdx, q.nbSlots) < q.deqBatch {
		return nil, false
	}
	start := readIdx * q.elemSize
	return q.storage[start : start+q.deqBatch*q.elemSize], true
}

// CommitRead frees the batch most recently returned by ReadPtr, advancing
// readIdx by deqBatch slots modulo nbSlots. Must be preceded by a
// successful ReadPtr call with no intervening consumer call.
func (q *BatchedSPSCQueue) CommitRead() {
	readIdx := q.readIdx.LoadRelaxed()
	q.readIdx.StoreRelease(advance(readIdx, q.deqBatch, q.nbSlots))
}

// Size returns the instantaneous logical occupancy (writeIdx - readIdx)
// mod nbSlots. It is observational only: the result may be stale the
// instant it is returned, since the peer side can be advancing its index
// concurrently. Safe to call from either thread, or from neither.
func (q *BatchedSPSCQueue) Size() int {
	writeIdx := q.writeIdx.LoadAcquire()
	readIdx := q.readIdx.LoadAcquire()
	return int(occupancy(writeIdx, readIdx, q.nbSlots))
}

// Reset sets both indices to zero, emptying the queue. Not thread-safe:
// must only be called when no producer or consumer call is in flight.
// Provided for tests and benchmarks.
func (q *BatchedSPSCQueue) Reset() {
	q.writeIdx.StoreRelease(0)
	q.readIdx.StoreRelease(0)
}

// Fill sets writeIdx to nbSlots (not its mod-reduced representation of
// zero) with readIdx at zero, so occupancy reads as nbSlots. Each
// CommitRead then lowers occupancy by deqBatch; no commit wraps writeIdx
// back into [0, nbSlots) (advance wraps only on reaching nbSlots exactly),
// so writeIdx stays at nbSlots until Reset. Not thread-safe: must only be called when no producer or consumer call
// is in flight. Provided for tests and benchmarks.
func (q *BatchedSPSCQueue) Fill() {
	q.writeIdx.StoreRelease(q.nbSlots)
	q.readIdx.StoreRelease(0)
}

// occupancy computes (writeIdx - readIdx) mod nbSlots using the wraparound
// identity of unsigned arithmetic, matching the original implementation:
// a naive write_idx - read_idx underflows when write_idx < read_idx, but
// adding nbSlots back lands on the correct value modulo 2^64.
func occupancy(writeIdx, readIdx, nbSlots uint64) uint64 {
	diff := writeIdx - readIdx
	if writeIdx < readIdx {
		diff += nbSlots
	}
	return diff
}

// advance computes idx+batch, wrapping to 0 exactly when it reaches
// nbSlots. Because batch always divides nbSlots, the result is never a
// value that would make a batch straddle the nbSlots -> 0 wrap.
func advance(idx, batch, nbSlots uint64) uint64 {
	next := idx + batch
	if next == nbSlots {
		next = 0
	}
	return next
}
