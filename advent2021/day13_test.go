package main

import "testing"

const day13Example = `
6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
`

func TestDay13(t *testing.T) {
	checkExample(t, day13, day13Example, "17", "#####\n#...#\n#...#\n#...#\n#####")
}

func TestDay13Errors(t *testing.T) {
	checkError(t, day13, "1,2\n")
	checkError(t, day13, "1,2\n\nfold along z=3\n")
	checkError(t, day13, "1;2\n\nfold along x=3\n")
}
