package circuit

import "fmt"

// Divider models a two-resistor voltage divider with a resistive load RL
// hanging off the output node. All resistances are in ohms, Vin in volts.
type Divider struct {
	Vin float64
	R1  float64
	R2  float64
	RL  float64
}

// Validate reports whether the divider parameters lie inside the model
// domain: strictly positive resistances.
func (d Divider) Validate() error {
	if d.R1 <= 0 {
		return fmt.Errorf("%w: R1=%g", ErrDomain, d.R1)
	}
	if d.R2 <= 0 {
		return fmt.Errorf("%w: R2=%g", ErrDomain, d.R2)
	}
	if d.RL <= 0 {
		return fmt.Errorf("%w: RL=%g", ErrDomain, d.RL)
	}
	return nil
}

// EffectiveR2 returns the bottom leg with the load in parallel:
// R2*RL/(R2+RL). Strictly less than min(R2, RL) for finite positive RL.
func (d Divider) EffectiveR2() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return (d.R2 * d.RL) / (d.R2 + d.RL), nil
}

// Vout returns the loaded divider output Vin * effR2/(R1 + effR2).
func (d Divider) Vout() (float64, error) {
	eff, err := d.EffectiveR2()
	if err != nil {
		return 0, err
	}
	return d.Vin * eff / (d.R1 + eff), nil
}

// Ratio returns the unloaded divider ratio R2/(R1+R2).
func (d Divider) Ratio() (float64, error) {
	if d.R1 <= 0 || d.R2 <= 0 {
		return 0, fmt.Errorf("%w: R1=%g R2=%g", ErrDomain, d.R1, d.R2)
	}
	return d.R2 / (d.R1 + d.R2), nil
}
