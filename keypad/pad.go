package keypad

import "fmt"

// gapRune marks the forbidden cell in a layout row.
const gapRune = ' '

// Pad is an immutable keypad layout: a Rows×Cols grid with exactly one gap.
type Pad struct {
	name   string
	rows   int
	cols   int
	gap    Coordinate
	coords [numKeys]Coordinate
	onPad  [numKeys]bool
	cells  []Key // row-major; keyInvalid marks the gap
	// neighborOffsets holds the four orthogonal steps: up, right, down, left.
	neighborOffsets [4]Coordinate
}

var (
	numericPad = mustPad("numeric", []string{
		"789",
		"456",
		"123",
		" 0A",
	})
	directionalPad = mustPad("directional", []string{
		" ^A",
		"<v>",
	})
)

// Numeric returns the 4×3 door keypad.
func Numeric() *Pad { return numericPad }

// Directional returns the 2×3 robot control keypad.
func Directional() *Pad { return directionalPad }

// mustPad builds a Pad from printed layout rows. Every row must have the
// same width and exactly one cell must be the gap; the layouts are fixed at
// compile time, so a malformed layout panics.
func mustPad(name string, layout []string) *Pad {
	if len(layout) == 0 || len(layout[0]) == 0 {
		panic(fmt.Sprintf("keypad: %s layout is empty", name))
	}
	h, w := len(layout), len(layout[0])
	p := &Pad{
		name:            name,
		rows:            h,
		cols:            w,
		cells:           make([]Key, h*w),
		neighborOffsets: [4]Coordinate{{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
	}
	gaps := 0
	for r, row := range layout {
		if len(row) != w {
			panic(fmt.Sprintf("keypad: %s layout row %d has width %d, want %d", name, r, len(row), w))
		}
		for c, ch := range row {
			at := Coordinate{Row: r, Col: c}
			if ch == gapRune {
				p.gap = at
				gaps++
				continue
			}
			k, err := ParseKey(ch)
			if err != nil {
				panic(fmt.Sprintf("keypad: %s layout: %v", name, err))
			}
			p.coords[k] = at
			p.onPad[k] = true
			p.cells[p.index(at)] = k
		}
	}
	if gaps != 1 {
		panic(fmt.Sprintf("keypad: %s layout has %d gaps, want 1", name, gaps))
	}
	return p
}

// Name returns "numeric" or "directional".
func (p *Pad) Name() string { return p.name }

// Rows returns the grid height.
func (p *Pad) Rows() int { return p.rows }

// Cols returns the grid width.
func (p *Pad) Cols() int { return p.cols }

// Gap returns the coordinate of the forbidden cell.
func (p *Pad) Gap() Coordinate { return p.gap }

// String implements fmt.Stringer.
func (p *Pad) String() string { return p.name }

// InBounds reports whether c lies within the grid, gap included.
func (p *Pad) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < p.rows && c.Col >= 0 && c.Col < p.cols
}

// IsGap reports whether c is the forbidden cell.
func (p *Pad) IsGap(c Coordinate) bool { return c == p.gap }

// Has reports whether k is printed on p.
func (p *Pad) Has(k Key) bool { return k < numKeys && p.onPad[k] }

// CoordinateOf returns the cell holding k. It panics if k is not on p.
func (p *Pad) CoordinateOf(k Key) Coordinate {
	if !p.Has(k) {
		panic(fmt.Sprintf("keypad: key %s is not on the %s pad", k, p.name))
	}
	return p.coords[k]
}

// KeyAt returns the key at c, or false for the gap or any cell off the grid.
func (p *Pad) KeyAt(c Coordinate) (Key, bool) {
	if !p.InBounds(c) || p.IsGap(c) {
		return keyInvalid, false
	}
	return p.cells[p.index(c)], true
}

// Keys returns every key on p in row-major order.
func (p *Pad) Keys() []Key {
	keys := make([]Key, 0, len(p.cells)-1)
	for _, k := range p.cells {
		if k != keyInvalid {
			keys = append(keys, k)
		}
	}
	return keys
}

// index maps c to a row-major index: Row*cols + Col.
func (p *Pad) index(c Coordinate) int {
	return c.Row*p.cols + c.Col
}

// coordinate converts a row-major index back to a Coordinate.
func (p *Pad) coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / p.cols, Col: idx % p.cols}
}
