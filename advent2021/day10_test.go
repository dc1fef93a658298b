package main

import "testing"

func TestDay10(t *testing.T) {
	checkExample(t, day10, `
[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
`, "26397", "288957")
}

func TestCheckChunks(t *testing.T) {
	for _, tt := range []struct {
		line     string
		illegal  byte
		expected string
	}{
		{"([])", 0, ""},
		{"{()()()>", '>', ""},
		{"(((()))}", '}', ""},
		{"[({(<(())[]>[[{[]{<()<>>", 0, "}}]])})]"},
	} {
		illegal, expected := checkChunks(tt.line)
		var rev []byte
		for i := len(expected) - 1; i >= 0; i-- {
			rev = append(rev, expected[i])
		}
		if illegal != tt.illegal || string(rev) != tt.expected {
			t.Errorf("checkChunks(%q): got %q, %q; want %q, %q",
				tt.line, illegal, rev, tt.illegal, tt.expected)
		}
	}
}
