//go:build !race

package holoflow

// RaceEnabled is false when the race detector is not active.
const RaceEnabled = false
