package main

import "testing"

func TestDay17(t *testing.T) {
	checkExample(t, day17, "target area: x=20..30, y=-10..-5\n", "45", "112")
	checkError(t, day17, "target area: x=20..30\n")
	checkError(t, day17, "target area: x=20..30, y=5..10\n")
}

func TestLaunch(t *testing.T) {
	target := targetArea{20, 30, -10, -5}
	for _, tt := range []struct {
		vx, vy int
		hit    bool
	}{
		{7, 2, true},
		{6, 3, true},
		{9, 0, true},
		{17, -4, false},
		{6, 9, true},
	} {
		if _, hit := launch(target, tt.vx, tt.vy); hit != tt.hit {
			t.Errorf("launch(%d, %d): got hit=%t; want %t", tt.vx, tt.vy, hit, tt.hit)
		}
	}
}
