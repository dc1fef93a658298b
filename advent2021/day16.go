package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("16", day16)
}

func day16(in *puzzle.Input) (puzzle.Result, error) {
	pkt, err := decodeTransmission(in.Text())
	if err != nil {
		return puzzle.Result{}, err
	}
	in.Dump("packet", pkt)
	v, err := pkt.eval()
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answer(pkt.versionSum(), v), nil
}

const (
	typeSum     = 0
	typeProduct = 1
	typeMin     = 2
	typeMax     = 3
	typeLiteral = 4
	typeGreater = 5
	typeLess    = 6
	typeEqual   = 7
)

type packet struct {
	Version int
	Type    int
	Value   int // literal packets only
	Sub     []*packet
}

func (p *packet) versionSum() int {
	sum := p.Version
	for _, sub := range p.Sub {
		sum += sub.versionSum()
	}
	return sum
}

func (p *packet) eval() (int, error) {
	if p.Type == typeLiteral {
		return p.Value, nil
	}
	vals := make([]int, len(p.Sub))
	for i, sub := range p.Sub {
		v, err := sub.eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	if len(vals) == 0 {
		return 0, fmt.Errorf("operator packet of type %d has no sub-packets", p.Type)
	}
	switch p.Type {
	case typeSum:
		var sum int
		for _, v := range vals {
			sum += v
		}
		return sum, nil
	case typeProduct:
		prod := 1
		for _, v := range vals {
			prod *= v
		}
		return prod, nil
	case typeMin:
		return minOf(vals), nil
	case typeMax:
		return -minOf(negate(vals)), nil
	}
	if len(vals) != 2 {
		return 0, fmt.Errorf("comparison packet of type %d has %d sub-packets; want 2", p.Type, len(vals))
	}
	var b bool
	switch p.Type {
	case typeGreater:
		b = vals[0] > vals[1]
	case typeLess:
		b = vals[0] < vals[1]
	case typeEqual:
		b = vals[0] == vals[1]
	}
	if b {
		return 1, nil
	}
	return 0, nil
}

func minOf(vals []int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		m = min(m, v)
	}
	return m
}

func negate(vals []int) []int {
	neg := make([]int, len(vals))
	for i, v := range vals {
		neg[i] = -v
	}
	return neg
}

var errTruncated = errors.New("transmission ends mid-packet")

// A bitReader reads big-endian bit fields from a byte slice.
type bitReader struct {
	b   []byte
	pos int // in bits
}

func (r *bitReader) read(n int) (int, error) {
	if r.pos+n > len(r.b)*8 {
		return 0, errTruncated
	}
	var v int
	for range n {
		bit := r.b[r.pos/8] >> (7 - r.pos%8) & 1
		v = v<<1 | int(bit)
		r.pos++
	}
	return v, nil
}

func decodeTransmission(s string) (*packet, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	r := &bitReader{b: b}
	pkt, err := r.packet()
	if err != nil {
		return nil, err
	}
	// What remains must be zero padding.
	for r.pos < len(b)*8 {
		if bit, _ := r.read(1); bit != 0 {
			return nil, fmt.Errorf("trailing data after packet at bit %d", r.pos-1)
		}
	}
	return pkt, nil
}

func (r *bitReader) packet() (*packet, error) {
	var p packet
	var err error
	if p.Version, err = r.read(3); err != nil {
		return nil, err
	}
	if p.Type, err = r.read(3); err != nil {
		return nil, err
	}
	if p.Type == typeLiteral {
		for {
			group, err := r.read(5)
			if err != nil {
				return nil, err
			}
			if p.Value > (1<<58)-1 {
				return nil, errors.New("literal value overflows")
			}
			p.Value = p.Value<<4 | group&0xf
			if group&0x10 == 0 {
				return &p, nil
			}
		}
	}

	lengthType, err := r.read(1)
	if err != nil {
		return nil, err
	}
	if lengthType == 0 {
		n, err := r.read(15)
		if err != nil {
			return nil, err
		}
		end := r.pos + n
		for r.pos < end {
			sub, err := r.packet()
			if err != nil {
				return nil, err
			}
			p.Sub = append(p.Sub, sub)
		}
		if r.pos != end {
			return nil, fmt.Errorf("sub-packets overran their length by %d bits", r.pos-end)
		}
		return &p, nil
	}
	n, err := r.read(11)
	if err != nil {
		return nil, err
	}
	for range n {
		sub, err := r.packet()
		if err != nil {
			return nil, err
		}
		p.Sub = append(p.Sub, sub)
	}
	return &p, nil
}
