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

// VoltageDivider is the flagship lesson: an animated walk through
// Vout = Vin * R2 / (R1 + R2), then what a real load does to it.
func VoltageDivider(cfg *config.Config) (*Production, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ps := param.NewStore()
	ps.Define("vin", cfg.Params.Vin)
	ps.Define("r1", cfg.Params.R1)
	ps.Define("r2", cfg.Params.R2)
	ps.Define("rl", cfg.Params.RL)

	dividerOf := func() circuit.Divider {
		return circuit.Divider{
			Vin: ps.Get("vin"),
			R1:  ps.Get("r1"),
			R2:  ps.Get("r2"),
			RL:  ps.Get("rl"),
		}
	}

	sc := scene.New()
	w := cfg.Width * 2
	h := cfg.Height * 4

	title := sc.AddHidden("title",
		&scene.Text{Col: cfg.Width/2 - 10, Row: 0, S: "The Voltage Divider"})
	subtitle := sc.AddHidden("subtitle",
		&scene.Text{Col: cfg.Width/2 - 16, Row: 1, S: "two resistors, one adjustable voltage"})

	schRegion := viz.Rect{X: 8, Y: 14, W: w/2 - 26, H: h - 40}
	sch := sc.AddHidden("schematic", Schematic(schRegion, false))
	loadedSch := Schematic(schRegion, true)

	eqRow := cfg.Height - 5
	equation := sc.AddHidden("equation",
		&scene.Text{Col: 4, Row: eqRow, S: "Vout = Vin x R2' / (R1 + R2')    R2' = R2 || RL"})

	readout := sc.BindHidden("readout", func() (scene.Fragment, error) {
		dv := dividerOf()
		eff, err := dv.EffectiveR2()
		if err != nil {
			return nil, err
		}
		vout, err := dv.Vout()
		if err != nil {
			return nil, err
		}
		return scene.NewGroup(
			&scene.Text{Col: 4, Row: eqRow + 2, S: fmt.Sprintf(
				"Vin %s   R1 %s   R2 %s   RL %s",
				fmtVolts(dv.Vin), fmtOhms(dv.R1), fmtOhms(dv.R2), fmtOhms(dv.RL))},
			&scene.Text{Col: 4, Row: eqRow + 3, S: fmt.Sprintf(
				"R2' %s   Vout %s", fmtOhms(eff), fmtVolts(vout))},
		), nil
	})

	waveAxes := scene.Axes{
		Region: viz.Rect{X: w/2 + 6, Y: 16, W: w/2 - 14, H: h - 52},
		XMin:   0, XMax: 1,
		YMin: -14, YMax: 14,
	}
	waveFrame := sc.AddHidden("wave_frame", waveAxes.Frame())
	vinWave := sc.BindHidden("vin_wave", func() (scene.Fragment, error) {
		v := ps.Get("vin")
		return waveAxes.Plot(func(x float64) float64 {
			return v * math.Sin(2*math.Pi*2*x)
		}, 96), nil
	})
	voutWave := sc.BindHidden("vout_wave", func() (scene.Fragment, error) {
		vout, err := dividerOf().Vout()
		if err != nil {
			return nil, err
		}
		return waveAxes.Plot(func(x float64) float64 {
			return vout * math.Sin(2*math.Pi*2*x)
		}, 96), nil
	})
	waveLabel := sc.AddHidden("wave_label",
		&scene.Text{Col: cfg.Width/2 + 4, Row: 3, S: "input vs output swing"})

	caption := sc.BindHidden("caption", func() (scene.Fragment, error) {
		var s string
		switch {
		case ps.Get("rl") < 1e5:
			s = "a real load pulls the output node down"
		case ps.Get("r1") == ps.Get("r2"):
			s = "equal resistors split the supply in half"
		default:
			s = "the ratio R2/(R1+R2) sets the output"
		}
		return &scene.Text{Col: 4, Row: 3, S: s}, nil
	})

	d := anim.New(sc, cfg.Width, cfg.Height, cfg.FPS)

	d.Play(anim.Combo(0.4,
		anim.FadeIn(title, 0.8),
		anim.FadeIn(subtitle, 0.8),
	))
	d.Play(anim.Beat(0))
	d.Play(anim.Create(sch, 1.6))
	d.Play(anim.FadeIn(equation, 0.6), anim.FadeIn(readout, 0.6), anim.FadeIn(caption, 0.6))
	d.Play(anim.Combo(0.5,
		anim.Create(waveFrame, 0.8),
		anim.FadeIn(waveLabel, 0.5),
		anim.FadeIn(vinWave, 0.6),
		anim.FadeIn(voutWave, 0.6),
	))
	d.Play(anim.Beat(0.4))

	// sweep the bottom resistor both ways, then stiffen the top one
	d.Play(ps.Interpolate("r2", 20000, 1.2, param.Smooth), anim.Pop(readout, 1.2))
	d.Play(anim.Beat(0.3))
	d.Play(ps.Interpolate("r2", 5000, 1.2, param.Smooth))
	d.Play(anim.Beat(0.3))
	d.Play(
		ps.Interpolate("r2", 10000, 0.9, param.Smooth),
		ps.Interpolate("r1", 20000, 0.9, param.Smooth),
	)
	d.Play(anim.Beat(0.4))

	// hang a real load off the output node
	d.Play(anim.Morph(sch, loadedSch, 1.0), anim.Ring(sc, equation, 1.0))
	d.Play(anim.Beat(0.3))
	d.Play(ps.Interpolate("rl", 2000, 1.5, param.EaseInOut), anim.Pop(voutWave, 1.5))
	d.Play(anim.Beat(0.4))
	d.Play(ps.Interpolate("rl", 20000, 1.0, param.Smooth))
	d.Play(anim.Beat(0.3))

	// the ratio shrugs off supply swings
	d.Play(ps.Interpolate("vin", 12, 0.9, param.Smooth))
	d.Play(ps.Interpolate("vin", 7, 0.9, param.Smooth))
	d.Play(anim.Beat(0.6))

	return &Production{
		Name:     "voltage_divider",
		Scene:    sc,
		Store:    ps,
		Director: d,
		Metrics: []metrics.Metric{
			metrics.NewMin("vout"),
			metrics.NewMax("vout"),
			metrics.NewPeakToPeak("vout"),
			metrics.NewMin("eff_r2"),
		},
		Snapshot: func() map[string]float64 {
			vals := ps.Snapshot()
			div := dividerOf()
			if vout, err := div.Vout(); err == nil {
				vals["vout"] = vout
			}
			if eff, err := div.EffectiveR2(); err == nil {
				vals["eff_r2"] = eff
			}
			return vals
		},
	}, nil
}

func fmtOhms(r float64) string {
	switch {
	case r >= 1e6:
		return fmt.Sprintf("%.2f MΩ", r/1e6)
	case r >= 1e3:
		return fmt.Sprintf("%.1f kΩ", r/1e3)
	default:
		return fmt.Sprintf("%.0f Ω", r)
	}
}

func fmtVolts(v float64) string {
	return fmt.Sprintf("%.2f V", v)
}
