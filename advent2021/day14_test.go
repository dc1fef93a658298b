package main

import "testing"

func TestDay14(t *testing.T) {
	checkExample(t, day14, `
NNCB

CH -> B
HH -> N
CB -> H
NH -> C
HB -> C
HC -> B
HN -> C
NN -> C
BH -> H
NC -> B
NB -> B
BN -> B
BB -> N
BC -> B
CC -> N
CN -> C
`, "1588", "2188189693529")
}

func TestDay14Errors(t *testing.T) {
	checkError(t, day14, "NNCB\n")
	checkError(t, day14, "N\n\nNN -> C\n")
	checkError(t, day14, "NNCB\n\nNN => C\n")
}
