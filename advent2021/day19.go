package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("19", day19)
}

// minOverlap is the number of beacons two scanners must have in common
// to be aligned.
const minOverlap = 12

type vec3 [3]int

func (v vec3) add(w vec3) vec3 { return vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }
func (v vec3) sub(w vec3) vec3 { return vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

func (v vec3) manhattan(w vec3) int {
	d := v.sub(w)
	return abs(d[0]) + abs(d[1]) + abs(d[2])
}

// A rotation maps a vector by permuting its axes and flipping signs.
type rotation struct {
	perm [3]int
	sign [3]int
}

func (r rotation) apply(v vec3) vec3 {
	return vec3{
		r.sign[0] * v[r.perm[0]],
		r.sign[1] * v[r.perm[1]],
		r.sign[2] * v[r.perm[2]],
	}
}

// rotations are the 24 proper rotations of the axis-aligned cube: the
// signed permutation matrices with determinant +1.
var rotations = func() []rotation {
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	var rots []rotation
	for _, p := range perms {
		// Parity of the permutation: even permutations are rotations of
		// the axes themselves.
		parity := 1
		if p == [3]int{0, 2, 1} || p == [3]int{1, 0, 2} || p == [3]int{2, 1, 0} {
			parity = -1
		}
		for s := 0; s < 8; s++ {
			sign := [3]int{1, 1, 1}
			det := parity
			for i := range 3 {
				if s&(1<<i) != 0 {
					sign[i] = -1
					det = -det
				}
			}
			if det == 1 {
				rots = append(rots, rotation{p, sign})
			}
		}
	}
	return rots
}()

type scanner struct {
	beacons []vec3
	pos     vec3 // relative to scanner 0, once aligned
}

func day19(in *puzzle.Input) (puzzle.Result, error) {
	scanners, err := parseScanners(in.Blocks())
	if err != nil {
		return puzzle.Result{}, err
	}
	if err := alignScanners(in, scanners); err != nil {
		return puzzle.Result{}, err
	}
	beacons := make(map[vec3]bool)
	for _, s := range scanners {
		for _, b := range s.beacons {
			beacons[b] = true
		}
	}
	var farthest int
	for _, a := range scanners {
		for _, b := range scanners {
			farthest = max(farthest, a.pos.manhattan(b.pos))
		}
	}
	return puzzle.Answer(len(beacons), farthest), nil
}

func parseScanners(blocks [][]string) ([]*scanner, error) {
	var scanners []*scanner
	for i, block := range blocks {
		if !strings.HasPrefix(block[0], "--- scanner") {
			return nil, fmt.Errorf("block %d: missing scanner header", i+1)
		}
		s := new(scanner)
		for _, line := range block[1:] {
			var v vec3
			if _, err := fmt.Sscanf(line, "%d,%d,%d", &v[0], &v[1], &v[2]); err != nil {
				return nil, fmt.Errorf("scanner %d: bad beacon %q: %s", i, line, err)
			}
			s.beacons = append(s.beacons, v)
		}
		scanners = append(scanners, s)
	}
	if len(scanners) == 0 {
		return nil, fmt.Errorf("no scanners")
	}
	return scanners, nil
}

// alignScanners rewrites every scanner's beacons into scanner 0's
// frame. Each newly aligned scanner is used as a reference for the
// remaining ones. The order of scanners is left unchanged.
func alignScanners(in *puzzle.Input, scanners []*scanner) error {
	aligned := []*scanner{scanners[0]}
	pending := slices.Clone(scanners[1:])
	tried := make(map[[2]*scanner]bool)
	for len(pending) > 0 {
		progress := false
		for i := 0; i < len(pending); i++ {
			s := pending[i]
			for _, ref := range aligned {
				if tried[[2]*scanner{ref, s}] {
					continue
				}
				tried[[2]*scanner{ref, s}] = true
				if align(ref, s) {
					in.Tracef("aligned scanner at %v", s.pos)
					aligned = append(aligned, s)
					pending = append(pending[:i], pending[i+1:]...)
					i--
					progress = true
					break
				}
			}
		}
		if !progress {
			return fmt.Errorf("%d scanners could not be aligned", len(pending))
		}
	}
	return nil
}

// align tries every rotation of s against the already-aligned ref. On
// success it transforms s in place.
func align(ref, s *scanner) bool {
	rotated := make([]vec3, len(s.beacons))
	for _, r := range rotations {
		for i, b := range s.beacons {
			rotated[i] = r.apply(b)
		}
		votes := make(map[vec3]int)
		for _, a := range ref.beacons {
			for _, b := range rotated {
				offset := a.sub(b)
				votes[offset]++
				if votes[offset] < minOverlap {
					continue
				}
				for i := range rotated {
					s.beacons[i] = rotated[i].add(offset)
				}
				s.pos = offset
				return true
			}
		}
	}
	return false
}
