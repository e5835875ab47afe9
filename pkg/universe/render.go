package universe

import "strings"

const (
	deadGlyph  = '□'
	aliveGlyph = '■'
)

// Render draws the grid as text, one line per row, each line terminated by a
// newline. An empty grid renders as the empty string.
func (u *Universe) Render() string {
	w := int(u.width)
	if w == 0 || u.height == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(u.cells)*3 + int(u.height))
	for start := 0; start < len(u.cells); start += w {
		for _, c := range u.cells[start : start+w] {
			if Cell(c) == Dead {
				b.WriteRune(deadGlyph)
			} else {
				b.WriteRune(aliveGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer.
func (u *Universe) String() string { return u.Render() }
