package formant

import (
	"strconv"
	"sync/atomic"
)

var idCounter uint64

// NewID returns a process-unique element id with the given scope prefix,
// e.g. NewID("slider") -> "slider-3".
func NewID(scope string) string {
	return scope + "-" + strconv.FormatUint(atomic.AddUint64(&idCounter, 1), 10)
}
