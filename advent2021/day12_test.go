package main

import "testing"

func TestDay12(t *testing.T) {
	checkExample(t, day12, `
start-A
start-b
A-c
A-b
b-d
A-end
b-end
`, "10", "36")
	checkExample(t, day12, `
dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sa
kj-HN
kj-dc
`, "19", "103")
}

func TestDay12Errors(t *testing.T) {
	checkError(t, day12, "start-A\nA-B\nB-end\n")
	checkError(t, day12, "start-a\n")
	checkError(t, day12, "start a\n")
}
