package circuit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/voltlab/electroanim/internal/circuit"
)

var _ = Describe("Divider", func() {
	grid := []float64{47, 330, 1000, 4700, 10000, 22000, 100000}

	It("keeps Vout between 0 and Vin for positive resistances", func() {
		for _, r1 := range grid {
			for _, r2 := range grid {
				for _, rl := range grid {
					d := circuit.Divider{Vin: 9.0, R1: r1, R2: r2, RL: rl}
					v, err := d.Vout()
					Expect(err).NotTo(HaveOccurred())
					Expect(v).To(BeNumerically(">", 0))
					Expect(v).To(BeNumerically("<", d.Vin))
				}
			}
		}
	})

	It("bounds the effective bottom leg below min(R2, RL)", func() {
		for _, r2 := range grid {
			for _, rl := range grid {
				d := circuit.Divider{Vin: 5, R1: 1000, R2: r2, RL: rl}
				eff, err := d.EffectiveR2()
				Expect(err).NotTo(HaveOccurred())
				Expect(eff).To(BeNumerically("<", math.Min(r2, rl)))
			}
		}
	})

	It("converges to the unloaded divider as RL grows", func() {
		d := circuit.Divider{Vin: 9, R1: 10000, R2: 10000}
		ratio, err := d.Ratio()
		Expect(err).NotTo(HaveOccurred())

		prevGap := math.Inf(1)
		for _, rl := range []float64{1e4, 1e6, 1e8, 1e10} {
			d.RL = rl
			v, err := d.Vout()
			Expect(err).NotTo(HaveOccurred())
			gap := math.Abs(v - d.Vin*ratio)
			Expect(gap).To(BeNumerically("<", prevGap))
			prevGap = gap
		}
		Expect(prevGap).To(BeNumerically("<", 1e-5))
	})

	It("reproduces the worked example", func() {
		d := circuit.Divider{Vin: 9.0, R1: 10000, R2: 10000, RL: 1_000_000}
		eff, err := d.EffectiveR2()
		Expect(err).NotTo(HaveOccurred())
		Expect(eff).To(BeNumerically("~", 9900.99, 0.01))

		v, err := d.Vout()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", 4.4776, 1e-3))
	})
})

var _ = Describe("Rail", func() {
	rail := circuit.Rail{
		Vin: 5.0, R1: 91, R2: 180,
		RLoad: circuit.DefaultRLoad, RLED: circuit.DefaultRLED,
	}

	It("sags monotonically as LEDs are added", func() {
		pts, err := rail.Staircase(10)
		Expect(err).NotTo(HaveOccurred())
		for i := 1; i < len(pts); i++ {
			Expect(pts[i].Vdd).To(BeNumerically("<", pts[i-1].Vdd))
		}
	})

	It("matches the regulator-comparison scenario", func() {
		v0, err := rail.Vdd()
		Expect(err).NotTo(HaveOccurred())
		Expect(v0).To(BeNumerically("~", 3.248, 1e-2))

		v3, err := rail.WithLEDs(3).Vdd()
		Expect(err).NotTo(HaveOccurred())
		Expect(v3).To(BeNumerically("~", 2.984, 1e-2))
	})

	It("browns out at the third LED for a 3.0V threshold", func() {
		n, ok := rail.FirstBrownout(3.0, 10)
		Expect(ok).To(BeTrue())
		Expect(n).To(Equal(3))
	})
})
