//go:build !amd64 && !arm64

package cacheline

// Size is 64 bytes, the common cache line size on architectures without an
// adjacent-line prefetcher.
const Size = 64
