package main

import "testing"

func TestDay2(t *testing.T) {
	checkExample(t, day2, `
forward 5
down 5
forward 8
up 3
down 8
forward 2
`, "150", "900")
	checkError(t, day2, "sideways 3\n")
	checkError(t, day2, "forward\n")
	checkError(t, day2, "up x\n")
}
