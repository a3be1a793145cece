package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/voltlab/electroanim/internal/anim"
	"github.com/voltlab/electroanim/internal/palette"
	"github.com/voltlab/electroanim/internal/viz"
)

// FrameSVG renders a frame as a standalone SVG: braille dots become circles
// and the label overlay becomes monospace <text> elements.
func FrameSVG(f *anim.Frame, scale float64) string {
	if scale <= 0 {
		scale = 4
	}
	c := f.Canvas
	width := float64(c.Width) * scale * 2
	height := float64(c.Height) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, palette.BG, palette.FG)

	dotRadius := scale * 0.4
	writeDots(&sb, c, scale, dotRadius)
	sb.WriteString("</g>\n")

	fontSize := scale * 3.4
	fmt.Fprintf(&sb, `<g fill="%s" font-family="monospace" font-size="%.1f">
`, palette.FG, fontSize)
	for row := 0; row < c.Height; row++ {
		text, col := labelRun(c, row)
		for text != "" {
			x := float64(col) * scale * 2
			y := float64(row)*scale*4 + scale*3
			fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" xml:space="preserve">%s</text>
`, x, y, escape(text))
			text, col = "", 0
		}
	}
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func writeDots(sb *strings.Builder, c *viz.Canvas, scale, dotRadius float64) {
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&brailleBit(dx, dy) == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius)
				}
			}
		}
	}
}

// labelRun collects the row's label overlay as a single padded string so one
// <text> element preserves column alignment.
func labelRun(c *viz.Canvas, row int) (string, int) {
	last := -1
	for col := c.Width - 1; col >= 0; col-- {
		if c.Labels[row][col] != 0 {
			last = col
			break
		}
	}
	if last < 0 {
		return "", 0
	}
	runes := make([]rune, last+1)
	for col := 0; col <= last; col++ {
		if r := c.Labels[row][col]; r != 0 {
			runes[col] = r
		} else {
			runes[col] = ' '
		}
	}
	return string(runes), 0
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// SVGSink writes every frame to dir as a numbered SVG file.
type SVGSink struct {
	Dir   string
	Scale float64

	count int
}

func NewSVGSink(dir string) *SVGSink {
	return &SVGSink{Dir: dir, Scale: 4}
}

func (s *SVGSink) WriteFrame(f *anim.Frame) error {
	if s.count == 0 {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("frame_%05d.svg", f.Index))
	if err := os.WriteFile(path, []byte(FrameSVG(f, s.Scale)), 0644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	s.count++
	return nil
}

// Frames returns the number of files written.
func (s *SVGSink) Frames() int { return s.count }
