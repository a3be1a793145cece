package param

// EaseFunc maps normalized progress u in [0,1] to an eased value in [0,1].
type EaseFunc func(u float64) float64

func Linear(u float64) float64 { return u }

// Smooth is the classic smoothstep curve, the default easing for parameter
// interpolation. Zero first derivative at both endpoints.
func Smooth(u float64) float64 {
	return u * u * (3 - 2*u)
}

func EaseOut(u float64) float64 {
	return 1 - (1-u)*(1-u)
}

func EaseInOut(u float64) float64 {
	if u < 0.5 {
		return 2 * u * u
	}
	return 1 - 2*(1-u)*(1-u)
}

func clamp01(u float64) float64 {
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}
