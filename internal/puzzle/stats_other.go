//go:build !unix

package puzzle

func readUsage(s *Stats) {}
