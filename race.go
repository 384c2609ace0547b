//go:build race

package holoflow

// RaceEnabled is true when the race detector is active. Tests use it to
// skip concurrent stress tests: the queue's atomix-based indices use
// acquire/release orderings the race detector does not model, so it
// reports false positives on an otherwise-correct algorithm.
const RaceEnabled = true
