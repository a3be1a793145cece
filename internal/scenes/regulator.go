package scenes

import (
	"fmt"
	"math"

	"github.com/voltlab/electroanim/internal/anim"
	"github.com/voltlab/electroanim/internal/circuit"
	"github.com/voltlab/electroanim/internal/config"
	"github.com/voltlab/electroanim/internal/metrics"
	"github.com/voltlab/electroanim/internal/param"
	"github.com/voltlab/electroanim/internal/scene"
	"github.com/voltlab/electroanim/internal/viz"
)

const maxLEDs = 8

// RegulatorComparison shows why a divider is not a regulator: the rail sags
// step by step as LED branches switch on, until it crosses the brown-out
// threshold.
func RegulatorComparison(cfg *config.Config) (*Production, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ps := param.NewStore()
	ps.Define("vin", cfg.Params.Vin)
	ps.Define("r1", cfg.Params.R1)
	ps.Define("r2", cfg.Params.R2)
	ps.Define("leds", float64(cfg.Params.LEDs))

	vmin := cfg.Params.Vmin
	if vmin <= 0 {
		vmin = config.DefaultVmin
	}

	railOf := func() circuit.Rail {
		return circuit.Rail{
			Vin:   ps.Get("vin"),
			R1:    ps.Get("r1"),
			R2:    ps.Get("r2"),
			RLoad: circuit.DefaultRLoad,
			RLED:  circuit.DefaultRLED,
			LEDs:  int(math.Round(ps.Get("leds"))),
		}
	}

	sc := scene.New()
	w := cfg.Width * 2
	h := cfg.Height * 4

	title := sc.AddHidden("title",
		&scene.Text{Col: cfg.Width/2 - 14, Row: 0, S: "A Divider Is Not a Regulator"})

	ax := scene.Axes{
		Region: viz.Rect{X: 10, Y: 14, W: w - 24, H: h - 48},
		XMin:   0, XMax: maxLEDs,
		YMin: 0, YMax: cfg.Params.Vin,
	}
	frame := sc.AddHidden("axes", ax.Frame())
	xLabel := sc.AddHidden("x_label",
		&scene.Text{Col: cfg.Width/2 - 6, Row: cfg.Height - 7, S: "LEDs switched on"})

	stairs := sc.BindHidden("staircase", func() (scene.Fragment, error) {
		pts, err := railOf().WithLEDs(0).Staircase(maxLEDs)
		if err != nil {
			return nil, err
		}
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, p := range pts {
			xs[i] = float64(p.LEDs)
			ys[i] = p.Vdd
		}
		return ax.Steps(xs, ys), nil
	})

	threshold := sc.AddHidden("threshold", scene.NewGroup(
		ax.HLine(vmin),
		&scene.Text{Col: 6, Row: ax.Pt(0, vmin).Y/4 - 1, S: fmt.Sprintf("brown-out %.1f V", vmin)},
	))

	// marker tracks the live LED count along the staircase
	marker := sc.BindHidden("marker", func() (scene.Fragment, error) {
		n := int(math.Round(ps.Get("leds")))
		vdd, err := railOf().WithLEDs(n).Vdd()
		if err != nil {
			return nil, err
		}
		p := ax.Pt(float64(n), vdd)
		return scene.NewGroup(
			&scene.Ellipse{R: viz.Rect{X: p.X - 2, Y: p.Y - 2, W: 5, H: 5}},
			&scene.Text{Col: 4, Row: 2, S: fmt.Sprintf("N = %d   Vdd = %s", n, fmtVolts(vdd))},
		), nil
	})

	warn := sc.BindHidden("warn", func() (scene.Fragment, error) {
		vdd, err := railOf().Vdd()
		if err != nil {
			return nil, err
		}
		if vdd >= vmin {
			return scene.NewGroup(), nil
		}
		return &scene.Text{Col: cfg.Width/2 - 8, Row: 2, S: "!! RAIL BROWN-OUT !!"}, nil
	})

	d := anim.New(sc, cfg.Width, cfg.Height, cfg.FPS)

	d.Play(anim.FadeIn(title, 0.8))
	d.Play(anim.Create(frame, 0.8), anim.FadeIn(xLabel, 0.6))
	d.Play(anim.Create(stairs, 1.2))
	d.Play(anim.FadeIn(threshold, 0.6), anim.Ring(sc, threshold, 0.8))
	d.Play(anim.Beat(0.4))
	d.Play(anim.FadeIn(marker, 0.4), anim.FadeIn(warn, 0.4))

	// switch the LEDs on one branch at a time, sag past the threshold
	d.Play(ps.Interpolate("leds", maxLEDs, 3.0, param.Linear), anim.Pop(marker, 3.0))
	d.Play(anim.Beat(0.5))

	// back off to just before brown-out
	safe := maxLEDs
	if n, ok := railOf().WithLEDs(0).FirstBrownout(vmin, maxLEDs); ok && n > 0 {
		safe = n - 1
	}
	d.Play(ps.Interpolate("leds", float64(safe), 1.2, param.Smooth))
	d.Play(anim.Beat(0.8))

	return &Production{
		Name:     "regulator_comparison",
		Scene:    sc,
		Store:    ps,
		Director: d,
		Metrics: []metrics.Metric{
			metrics.NewMin("vdd"),
			metrics.NewMax("vdd"),
			metrics.NewPeakToPeak("vdd"),
		},
		Snapshot: func() map[string]float64 {
			vals := ps.Snapshot()
			if vdd, err := railOf().Vdd(); err == nil {
				vals["vdd"] = vdd
			}
			return vals
		},
	}, nil
}
