package regfa

import "sync/atomic"

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Searches counts scans started on the Regex
	Searches uint64

	// Matches counts matches returned
	Matches uint64

	// BytesScanned counts input bytes handed to scans
	BytesScanned uint64

	// Accelerated reports whether scans use a start-symbol prefilter
	Accelerated bool
}

type counters struct {
	searches atomic.Uint64
	matches  atomic.Uint64
	bytes    atomic.Uint64
}

func (c *counters) record(input, matches int) {
	c.searches.Add(1)
	c.matches.Add(uint64(matches))
	c.bytes.Add(uint64(input))
}

func (c *counters) reset() {
	c.searches.Store(0)
	c.matches.Store(0)
	c.bytes.Store(0)
}
