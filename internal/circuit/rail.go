package circuit

import "fmt"

// Default rail loads for the regulator-comparison scene: a microcontroller
// board drawing a fixed equivalent resistance plus one equivalent resistance
// per lit LED.
const (
	DefaultRLoad = 2700.0
	DefaultRLED  = 2000.0
)

// Rail models a resistor divider abused as a supply rail: R1 on top, and a
// bottom leg of R2 in parallel with a fixed board load and N LED branches.
// Unlike a regulator, Vdd sags as branches are added.
type Rail struct {
	Vin   float64
	R1    float64
	R2    float64
	RLoad float64 // fixed board load, ohms
	RLED  float64 // equivalent resistance per lit LED, ohms
	LEDs  int
}

// Point is one sample of the Vdd-vs-LED-count staircase.
type Point struct {
	LEDs int
	Vdd  float64
}

func (r Rail) Validate() error {
	if r.R1 <= 0 || r.R2 <= 0 || r.RLoad <= 0 || r.RLED <= 0 {
		return fmt.Errorf("%w: R1=%g R2=%g RLoad=%g RLED=%g",
			ErrDomain, r.R1, r.R2, r.RLoad, r.RLED)
	}
	if r.LEDs < 0 {
		return fmt.Errorf("%w: LEDs=%d", ErrDomain, r.LEDs)
	}
	return nil
}

// EffectiveLeg returns the bottom leg resistance with every load branch in
// parallel: R2 || RLoad || (RLED/N).
func (r Rail) EffectiveLeg() (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	g := 1/r.R2 + 1/r.RLoad + float64(r.LEDs)/r.RLED
	return 1 / g, nil
}

// Vdd returns the sagging supply voltage at the divider midpoint.
func (r Rail) Vdd() (float64, error) {
	leg, err := r.EffectiveLeg()
	if err != nil {
		return 0, err
	}
	return r.Vin * leg / (r.R1 + leg), nil
}

// WithLEDs returns a copy of the rail with the LED count replaced.
func (r Rail) WithLEDs(n int) Rail {
	r.LEDs = n
	return r
}

// Staircase samples Vdd for LED counts 0..maxLEDs. The result is the step
// plot drawn in the regulator-comparison scene.
func (r Rail) Staircase(maxLEDs int) ([]Point, error) {
	if maxLEDs < 0 {
		return nil, fmt.Errorf("%w: maxLEDs=%d", ErrDomain, maxLEDs)
	}
	pts := make([]Point, 0, maxLEDs+1)
	for n := 0; n <= maxLEDs; n++ {
		v, err := r.WithLEDs(n).Vdd()
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{LEDs: n, Vdd: v})
	}
	return pts, nil
}

// FirstBrownout returns the smallest LED count in [0, maxLEDs] at which Vdd
// drops below threshold, and whether such a count exists.
func (r Rail) FirstBrownout(threshold float64, maxLEDs int) (int, bool) {
	pts, err := r.Staircase(maxLEDs)
	if err != nil {
		return 0, false
	}
	for _, p := range pts {
		if p.Vdd < threshold {
			return p.LEDs, true
		}
	}
	return 0, false
}
