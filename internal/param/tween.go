package param

// Tween transitions a parameter from its current value to a target over a
// fixed duration. The start value is captured when the director begins the
// tween, not when the tween is declared, so scripts can chain interpolations
// of the same parameter.
//
// Tween satisfies the director's step contract (Begin/Advance/Duration)
// without importing the anim package.
type Tween struct {
	store *Store
	name  string
	to    float64
	dur   float64
	ease  EaseFunc

	t0   float64
	from float64
}

// Interpolate prepares a transition of the named parameter toward target,
// sampled once per rendered frame while it is active. A nil ease defaults to
// Smooth.
func (s *Store) Interpolate(name string, target, duration float64, ease EaseFunc) *Tween {
	if ease == nil {
		ease = Smooth
	}
	if duration < 0 {
		duration = 0
	}
	return &Tween{store: s, name: name, to: target, dur: duration, ease: ease}
}

// Begin captures the start time and start value.
func (tw *Tween) Begin(t0 float64) {
	tw.t0 = t0
	tw.from = tw.store.Get(tw.name)
}

// Advance samples the tween at the given clock time, writing the eased value
// into the store. Times past the end clamp to the target exactly.
func (tw *Tween) Advance(now float64) {
	if tw.dur <= 0 || now >= tw.t0+tw.dur {
		tw.store.Set(tw.name, tw.to)
		return
	}
	u := clamp01((now - tw.t0) / tw.dur)
	v := tw.from + (tw.to-tw.from)*tw.ease(u)
	tw.store.Set(tw.name, v)
}

func (tw *Tween) Duration() float64 { return tw.dur }

// Target returns the value the tween converges to.
func (tw *Tween) Target() float64 { return tw.to }

// Name returns the parameter the tween drives.
func (tw *Tween) Name() string { return tw.name }
