// Package cacheline provides the cache-line padding size used to keep the
// queue's two atomic indices from sharing a cache line.
//
// Layout contract: any struct that interleaves Pad fields with atomic
// counters must keep each counter on its own line, or false sharing
// destroys SPSC throughput under contention. The size is architecture
// dependent: 64 bytes is safe on most cores, but CPUs with adjacent-line
// (sector) prefetch pull in a neighboring 64-byte line too, so those
// architectures need 128 bytes of separation instead.
package cacheline

// Pad is an opaque byte array sized to Size. Embed it between fields that
// must not share a cache line.
type Pad [Size]byte
