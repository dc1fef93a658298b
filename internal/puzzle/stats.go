package puzzle

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats describes the resources used by a run.
type Stats struct {
	Elapsed     time.Duration
	CPU         time.Duration // utime+stime; zero if unavailable
	MaxRSSBytes int64         // zero if unavailable
}

func (s *Stats) String() string {
	str := fmt.Sprintf("elapsed: %s", s.Elapsed.Round(time.Millisecond))
	if s.CPU > 0 {
		str += fmt.Sprintf(", cpu: %s", s.CPU.Round(time.Millisecond))
	}
	if s.MaxRSSBytes > 0 {
		str += fmt.Sprintf(", max RSS: %s", humanize.Bytes(uint64(s.MaxRSSBytes)))
	}
	return str
}

// Measure reports the resources used by this process since start.
func Measure(start time.Time) *Stats {
	s := &Stats{Elapsed: time.Since(start)}
	readUsage(s)
	return s
}
