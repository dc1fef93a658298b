package main

import "testing"

func TestDay2(t *testing.T) {
	checkExample(t, day2, `
1-3 a: abcde
1-3 b: cdefg
2-9 c: ccccccccc
`, "2", "1")
}

func TestPasswordPolicy(t *testing.T) {
	for _, tt := range []struct {
		entry               string
		byCount, byPosition bool
	}{
		{"1-3 a: abcde", true, true},
		{"1-3 b: cdefg", false, false},
		{"2-9 c: ccccccccc", true, false},
		{"1-4 x: xyz", true, true},
		{"3-3 z: zzz", true, false},
	} {
		p, err := parsePasswordPolicy(tt.entry)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.countValid(); got != tt.byCount {
			t.Errorf("%q: countValid = %t; want %t", tt.entry, got, tt.byCount)
		}
		if got := p.positionValid(); got != tt.byPosition {
			t.Errorf("%q: positionValid = %t; want %t", tt.entry, got, tt.byPosition)
		}
	}
	for _, entry := range []string{"1-3 a abcde", "x-3 a: abc", "3-1 a: abc", "1-3 ab: abc"} {
		if _, err := parsePasswordPolicy(entry); err == nil {
			t.Errorf("%q: got nil error", entry)
		}
	}
}
