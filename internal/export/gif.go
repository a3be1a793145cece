// Package export turns rendered frames into artifacts: animated GIFs,
// per-frame SVG files, and CSV parameter traces.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/voltlab/electroanim/internal/anim"
	"github.com/voltlab/electroanim/internal/palette"
)

// Cell size in raster pixels: each braille cell is 2x4 dots.
const (
	charW = 8
	charH = 16
)

// GIFSink captures frames as paletted images and writes an animated GIF.
// Only the dot layer is rasterized; the text overlay is a terminal/SVG
// concern.
type GIFSink struct {
	frames []*image.Paletted
	delay  int // per-frame delay, 100ths of a second
	pal    color.Palette
}

func NewGIFSink(fps int) *GIFSink {
	if fps <= 0 {
		fps = 30
	}
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}
	return &GIFSink{
		delay: delay,
		pal:   color.Palette{hexColor(palette.BG), hexColor(palette.FG)},
	}
}

func (g *GIFSink) WriteFrame(f *anim.Frame) error {
	c := f.Canvas
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), g.pal)

	dotW, dotH := charW/2, charH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&brailleBit(dx, dy) == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}

	g.frames = append(g.frames, img)
	return nil
}

// Frames returns the number of captured frames.
func (g *GIFSink) Frames() int { return len(g.frames) }

// Save encodes all captured frames to path.
func (g *GIFSink) Save(path string) error {
	if len(g.frames) == 0 {
		return fmt.Errorf("export: no frames captured")
	}
	out := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, g.delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	return gif.EncodeAll(f, &out)
}

// brailleBit maps a sub-dot position to its bit in the braille pattern.
func brailleBit(dx, dy int) int {
	switch dy {
	case 0:
		return 1 << (dx * 3)
	case 1:
		return 2 << (dx * 3)
	case 2:
		return 4 << (dx * 3)
	default:
		if dx == 0 {
			return 0x40
		}
		return 0x80
	}
}

func hexColor(s string) color.RGBA {
	var r, g, b uint8
	fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
