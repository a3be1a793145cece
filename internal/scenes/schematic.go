package scenes

import (
	"github.com/voltlab/electroanim/internal/scene"
	"github.com/voltlab/electroanim/internal/viz"
)

// Schematic fragments are drawn in sub-pixel coordinates: a battery on the
// left leg, R1 and R2 stacked on the right leg, and optionally a load branch
// RL hanging off the midpoint node.

const (
	resistorAmp  = 3
	resistorZigs = 6
)

// vResistor draws a vertical resistor as straight leads around a zigzag.
func vResistor(x, y0, y1 int) *scene.Polyline {
	lead := (y1 - y0) / 5
	span := (y1 - y0) - 2*lead

	pts := []scene.Pt{{X: x, Y: y0}, {X: x, Y: y0 + lead}}
	for i := 0; i < resistorZigs; i++ {
		dx := resistorAmp
		if i%2 == 1 {
			dx = -resistorAmp
		}
		y := y0 + lead + span*(2*i+1)/(2*resistorZigs)
		pts = append(pts, scene.Pt{X: x + dx, Y: y})
	}
	pts = append(pts, scene.Pt{X: x, Y: y1 - lead}, scene.Pt{X: x, Y: y1})
	return &scene.Polyline{Pts: pts}
}

// battery draws a vertical battery symbol: long plate above short plate,
// leads continuing to y0 and y1.
func battery(x, y0, y1 int) *scene.Group {
	ym := (y0 + y1) / 2
	return scene.NewGroup(
		&scene.Polyline{Pts: []scene.Pt{{X: x, Y: y0}, {X: x, Y: ym - 2}}},
		&scene.Polyline{Pts: []scene.Pt{{X: x - 5, Y: ym - 2}, {X: x + 5, Y: ym - 2}}},
		&scene.Polyline{Pts: []scene.Pt{{X: x - 2, Y: ym + 2}, {X: x + 2, Y: ym + 2}}},
		&scene.Polyline{Pts: []scene.Pt{{X: x, Y: ym + 2}, {X: x, Y: y1}}},
	)
}

// node draws a small junction dot.
func node(x, y int) *scene.Polyline {
	return &scene.Polyline{Pts: []scene.Pt{
		{X: x - 1, Y: y}, {X: x + 1, Y: y}, {X: x + 1, Y: y + 1}, {X: x - 1, Y: y + 1}, {X: x - 1, Y: y},
	}}
}

// label places text at the character cell covering the sub-pixel point.
func label(x, y int, s string) *scene.Text {
	return &scene.Text{Col: x / 2, Row: y / 4, S: s}
}

// Schematic builds the divider circuit inside region. With loaded set, a
// third resistor branch hangs off the output node.
func Schematic(region viz.Rect, loaded bool) scene.Fragment {
	lx := region.X + 4
	rx := region.X + region.W*3/5
	ty := region.Y
	by := region.Y + region.H - 1
	my := (ty + by) / 2

	items := []scene.Fragment{
		battery(lx, ty, by),
		&scene.Polyline{Pts: []scene.Pt{{X: lx, Y: ty}, {X: rx, Y: ty}}},
		vResistor(rx, ty, my),
		node(rx, my),
		vResistor(rx, my, by),
		&scene.Polyline{Pts: []scene.Pt{{X: rx, Y: by}, {X: lx, Y: by}}},
		label(lx-4, my-6, "Vin"),
		label(rx+4, (ty+my)/2, "R1"),
		label(rx+4, (my+by)/2, "R2"),
		label(rx+6, my-4, "Vout"),
	}

	if loaded {
		bx := region.X + region.W - 5
		items = append(items,
			&scene.Polyline{Pts: []scene.Pt{{X: rx, Y: my}, {X: bx, Y: my}}},
			vResistor(bx, my, by),
			&scene.Polyline{Pts: []scene.Pt{{X: bx, Y: by}, {X: rx, Y: by}}},
			label(bx+2, (my+by)/2, "RL"),
		)
	}
	return scene.NewGroup(items...)
}
