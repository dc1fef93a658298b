// Command fmtdemo prints examples of formatted output: padding,
// precision, and debug and pretty printing.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

type point struct {
	X, Y int
}

type segment struct {
	Name       string
	Start, End point
	Tags       []string
}

func main() {
	user := os.Getenv("USER")
	if user == "" {
		user = "nobody"
	}
	fmt.Printf("Hello, %s!\n", capitalize(user))

	for _, fill := range []rune{'0', ' ', 'X', '🦀'} {
		fmt.Printf("[%s]\n", pad("42", 10, fill))
	}
	fmt.Printf("%.3f\n%.4f\n", math.Pi, math.Pi)

	fmt.Printf("%#v\n", 12)
	s := segment{
		Name:  "diagonal",
		Start: point{0, 0},
		End:   point{8, 8},
		Tags:  []string{"vent", "45°"},
	}
	fmt.Printf("%+v\n", s)
	fmt.Printf("%# v\n", pretty.Formatter(s))

	fmt.Println(humanize.Comma(444356092776315))
	fmt.Println(humanize.Ordinal(23))
	fmt.Println(humanize.Bytes(3 << 20))
}

// capitalize upper-cases the first letter of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// pad right-aligns s in a field of width runes, filling with fill.
func pad(s string, width int, fill rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(fill), n) + s
}
