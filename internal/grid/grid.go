// Package grid provides a dense rectangular grid of bytes, the shape
// most of the map-like puzzle inputs take.
package grid

import (
	"fmt"
	"iter"
	"strings"
)

// A Point is a cell position. X grows to the right and Y grows down.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

var (
	// Dirs4 are the orthogonal unit offsets: up, right, down, left.
	Dirs4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	// Dirs8 adds the diagonals to Dirs4.
	Dirs8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// A Grid is a W×H array of bytes stored row by row.
type Grid struct {
	W, H  int
	cells []byte
}

// New returns a w×h grid with every cell set to fill.
func New(w, h int, fill byte) *Grid {
	g := &Grid{W: w, H: h, cells: make([]byte, w*h)}
	if fill != 0 {
		for i := range g.cells {
			g.cells[i] = fill
		}
	}
	return g
}

// Parse builds a grid from equal-length lines.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	w := len(lines[0])
	g := New(w, len(lines), 0)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("row %d has length %d; want %d", y+1, len(line), w)
		}
		copy(g.cells[y*w:], line)
	}
	return g, nil
}

// ParseDigits is like Parse but converts each '0'-'9' cell to its
// numeric value.
func ParseDigits(lines []string) (*Grid, error) {
	g, err := Parse(lines)
	if err != nil {
		return nil, err
	}
	for i, c := range g.cells {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("non-digit %q at row %d, col %d", c, i/g.W+1, i%g.W+1)
		}
		g.cells[i] = c - '0'
	}
	return g, nil
}

func (g *Grid) In(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

func (g *Grid) At(p Point) byte { return g.cells[p.Y*g.W+p.X] }

func (g *Grid) Set(p Point, v byte) { g.cells[p.Y*g.W+p.X] = v }

// Get is At for points that may be out of bounds, which read as def.
func (g *Grid) Get(p Point, def byte) byte {
	if !g.In(p) {
		return def
	}
	return g.At(p)
}

func (g *Grid) Clone() *Grid {
	g1 := &Grid{W: g.W, H: g.H, cells: make([]byte, len(g.cells))}
	copy(g1.cells, g.cells)
	return g1
}

// All yields every point in row-major order.
func (g *Grid) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

// Neighbors4 appends to dst the in-bounds orthogonal neighbors of p.
func (g *Grid) Neighbors4(dst []Point, p Point) []Point {
	return g.neighbors(dst, p, Dirs4)
}

// Neighbors8 appends to dst the in-bounds neighbors of p, diagonals included.
func (g *Grid) Neighbors8(dst []Point, p Point) []Point {
	return g.neighbors(dst, p, Dirs8)
}

func (g *Grid) neighbors(dst []Point, p Point, dirs []Point) []Point {
	for _, d := range dirs {
		if q := p.Add(d); g.In(q) {
			dst = append(dst, q)
		}
	}
	return dst
}

// Count returns the number of cells equal to v.
func (g *Grid) Count(v byte) int {
	var n int
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}

// String renders the grid one row per line. Cells holding small
// values (as from ParseDigits) print as digits.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range g.cells[y*g.W : (y+1)*g.W] {
			if c < 10 {
				c += '0'
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}
