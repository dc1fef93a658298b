package main

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

func sign[T constraints.Signed](n T) T {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
