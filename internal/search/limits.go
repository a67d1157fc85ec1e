package search

import (
	"encoding/json"
	"strings"
	"time"
)

// Limits bounds a search. The zero value of Depth and Movetime means no bound,
// which keeps the search exhaustive and the play optimal.
type Limits struct {
	Depth    int           `json:"depth"`
	Movetime time.Duration `json:"movetime"`
	Threads  int           `json:"threads"`
}

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    0,
		Movetime: 0,
		Threads:  1,
	}
}

// SetDepth - sets the maximum number of plies explored from the root.
func (that *Limits) SetDepth(depth int) *Limits {
	that.Depth = max(depth, 0)
	return that
}

// SetMovetime - sets the time the search may take before it gives up.
func (that *Limits) SetMovetime(movetime time.Duration) *Limits {
	that.Movetime = max(movetime, 0)
	return that
}

// SetThreads - sets how many root branches are searched at once.
func (that *Limits) SetThreads(threads int) *Limits {
	that.Threads = max(threads, 1)
	return that
}

// IsExhaustive - reports whether the search runs to the end of every line.
func (that *Limits) IsExhaustive() bool {
	return that.Depth == 0 && that.Movetime == 0
}

func (that Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(that)
	return strings.TrimSpace(builder.String())
}
