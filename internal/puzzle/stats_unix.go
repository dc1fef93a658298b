//go:build unix

package puzzle

import (
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

func readUsage(s *Stats) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return
	}
	s.CPU = time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
	// Maxrss is in kilobytes everywhere except macOS.
	s.MaxRSSBytes = int64(ru.Maxrss)
	if runtime.GOOS != "darwin" {
		s.MaxRSSBytes *= 1024
	}
}
