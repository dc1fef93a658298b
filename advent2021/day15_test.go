package main

import (
	"testing"

	"github.com/seafloor/puzzles/internal/grid"
)

func TestDay15(t *testing.T) {
	checkExample(t, day15, `
1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
`, "40", "315")
}

func TestTileCave(t *testing.T) {
	g, err := grid.ParseDigits([]string{"8"})
	if err != nil {
		t.Fatal(err)
	}
	want := "89123\n91234\n12345\n23456\n34567"
	if got := tileCave(g, 5).String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
