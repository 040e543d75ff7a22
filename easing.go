package ui

import "math"

// Easing maps elapsed time to an interpolated value. The arguments follow
// the classic (t, b, c, d) convention: t is the elapsed time, b the base
// value, c the value delta, and d the total duration.
//
// Every easing in this package satisfies ease(0,b,c,d) == b and
// ease(d,b,c,d) == b+c exactly. The boundaries are guarded explicitly so
// exactness holds even for the transcendental families.
type Easing func(t, b, c, d float64) float64

// clampEase wraps f with exact boundary handling.
func clampEase(f Easing) Easing {
	return func(t, b, c, d float64) float64 {
		if t <= 0 {
			return b
		}
		if t >= d {
			return b + c
		}
		return f(t, b, c, d)
	}
}

// EaseLinear interpolates at constant speed.
var EaseLinear = clampEase(func(t, b, c, d float64) float64 {
	return c*t/d + b
})

// EaseQuadIn accelerates from zero velocity.
var EaseQuadIn = clampEase(func(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
})

// EaseQuadOut decelerates to zero velocity.
var EaseQuadOut = clampEase(func(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
})

// EaseQuadInOut accelerates until halfway, then decelerates.
var EaseQuadInOut = clampEase(func(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
})

// EaseCubicIn accelerates from zero velocity.
var EaseCubicIn = clampEase(func(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
})

// EaseCubicOut decelerates to zero velocity.
var EaseCubicOut = clampEase(func(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t+1) + b
})

// EaseCubicInOut accelerates until halfway, then decelerates.
var EaseCubicInOut = clampEase(func(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
})

// EaseSineIn accelerates along a quarter sine wave.
var EaseSineIn = clampEase(func(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
})

// EaseSineOut decelerates along a quarter sine wave.
var EaseSineOut = clampEase(func(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
})

// EaseSineInOut eases in and out along a half sine wave.
var EaseSineInOut = clampEase(func(t, b, c, d float64) float64 {
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
})

// EaseExpoIn accelerates exponentially.
var EaseExpoIn = clampEase(func(t, b, c, d float64) float64 {
	return c*math.Pow(2, 10*(t/d-1)) + b
})

// EaseExpoOut decelerates exponentially.
var EaseExpoOut = clampEase(func(t, b, c, d float64) float64 {
	return c*(-math.Pow(2, -10*t/d)+1) + b
})

// EaseElasticOut overshoots and oscillates before settling.
var EaseElasticOut = clampEase(func(t, b, c, d float64) float64 {
	p := d * 0.3
	s := p / 4
	t /= d
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
})

// EaseBounceOut decelerates with a bouncing rebound.
var EaseBounceOut = clampEase(func(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+0.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+0.9375) + b
	default:
		t -= 2.625 / 2.75
		return c*(7.5625*t*t+0.984375) + b
	}
})
