package main

import "testing"

const day23Example = `
#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

func TestDay23(t *testing.T) {
	checkExample(t, day23, day23Example, "12521", "44169")
}

func TestOrganizeSorted(t *testing.T) {
	got, err := organize([]string{"ABCD", "ABCD"})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got %d; want 0", got)
	}
}

func TestOrganizeOneSwap(t *testing.T) {
	// B steps out to the space between the rooms (20), A steps out to
	// the right (2), B goes home (20), and A walks back past it (4).
	got, err := organize([]string{"BACD"})
	if err != nil {
		t.Fatal(err)
	}
	if want := 46; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestDay23Errors(t *testing.T) {
	checkError(t, day23, "#############\n#...........#\n###B#C#B#D###\n  #########\n")
	checkError(t, day23, "#############\n#...........#\n###B#C#B#E###\n  #A#D#C#A#\n  #########\n")
	checkError(t, day23, "#############\n#..A........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n")
}
