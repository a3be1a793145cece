package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// bayer is a 4x4 ordered-dither matrix. Opacity values are compared against
// these thresholds so partially transparent fragments render as a stable dot
// pattern instead of flickering frame to frame.
var bayer = [4][4]float64{
	{0.5 / 16, 8.5 / 16, 2.5 / 16, 10.5 / 16},
	{12.5 / 16, 4.5 / 16, 14.5 / 16, 6.5 / 16},
	{3.5 / 16, 11.5 / 16, 1.5 / 16, 9.5 / 16},
	{15.5 / 16, 7.5 / 16, 13.5 / 16, 5.5 / 16},
}

// Rect is an axis-aligned rectangle in sub-pixel coordinates.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0 := minInt(r.X, o.X)
	y0 := minInt(r.Y, o.Y)
	x1 := maxInt(r.X+r.W, o.X+o.W)
	y1 := maxInt(r.Y+r.H, o.Y+o.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Grow expands the rect by m sub-pixels on every side.
func (r Rect) Grow(m int) Rect {
	return Rect{r.X - m, r.Y - m, r.W + 2*m, r.H + 2*m}
}

// Canvas is a braille dot-matrix drawing surface with a character-cell text
// overlay. Dot coordinates are "sub-pixels": the drawable area is
// (Width*2) x (Height*4). Labels are positioned in character cells and take
// precedence over braille cells when the canvas is rendered to a string.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Labels        [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Labels: make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Labels[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // empty braille char
		}
	}
	return c
}

// Set turns on the dot at sub-pixel (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// SetA turns on the dot at (x, y) if the given opacity passes the ordered
// dither threshold for that position. Opacity 1 always draws, 0 never does.
func (c *Canvas) SetA(x, y int, alpha float64) {
	if alpha >= 1 {
		c.Set(x, y)
		return
	}
	if alpha <= 0 || x < 0 || y < 0 {
		return
	}
	if alpha >= bayer[y%4][x%4] {
		c.Set(x, y)
	}
}

// Clear resets both the dot grid and the label overlay.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Labels[i][j] = 0
		}
	}
}

// DrawLine draws a line between sub-pixels using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.DrawLineA(x0, y0, x1, y1, 1)
}

// DrawLineA is DrawLine with opacity dithering.
func (c *Canvas) DrawLineA(x0, y0, x1, y1 int, alpha float64) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetA(x0, y0, alpha)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect draws the outline of r.
func (c *Canvas) DrawRect(r Rect, alpha float64) {
	if r.Empty() {
		return
	}
	x1 := r.X + r.W - 1
	y1 := r.Y + r.H - 1
	c.DrawLineA(r.X, r.Y, x1, r.Y, alpha)
	c.DrawLineA(x1, r.Y, x1, y1, alpha)
	c.DrawLineA(x1, y1, r.X, y1, alpha)
	c.DrawLineA(r.X, y1, r.X, r.Y, alpha)
}

// DrawEllipse draws an ellipse inscribed in r.
func (c *Canvas) DrawEllipse(r Rect, alpha float64) {
	if r.Empty() {
		return
	}
	rx := float64(r.W) / 2
	ry := float64(r.H) / 2
	cx := float64(r.X) + rx
	cy := float64(r.Y) + ry
	n := 4 * (r.W + r.H)
	if n < 16 {
		n = 16
	}
	px, py := 0, 0
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := int(math.Round(cx + rx*math.Cos(a)))
		y := int(math.Round(cy + ry*math.Sin(a)))
		if i > 0 {
			c.DrawLineA(px, py, x, y, alpha)
		}
		px, py = x, y
	}
}

// Label writes text into the overlay starting at character cell (col, row).
// Text past the right edge is clipped.
func (c *Canvas) Label(col, row int, text string) {
	if row < 0 || row >= c.Height {
		return
	}
	for i, r := range []rune(text) {
		x := col + i
		if x < 0 {
			continue
		}
		if x >= c.Width {
			break
		}
		c.Labels[row][x] = r
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if l := c.Labels[row][col]; l != 0 {
				b.WriteRune(l)
			} else {
				b.WriteRune(c.Grid[row][col])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
