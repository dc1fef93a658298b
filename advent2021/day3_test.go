package main

import "testing"

func TestDay3(t *testing.T) {
	checkExample(t, day3, `
00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
`, "198", "230")
	checkError(t, day3, "")
	checkError(t, day3, "0101\n011\n")
	checkError(t, day3, "0120\n")
}
