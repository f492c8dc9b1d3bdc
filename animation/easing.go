package animation

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownEasing is returned when a name does not select an easing.
var ErrUnknownEasing = errors.New("unknown easing")

// EasingFunc maps time progress t in [0,1] to value progress.
type EasingFunc func(t float64) float64

// Out-curves mirror their in-curve, in-out curves run the in-curve over
// the first half and its mirror over the second.

func easeOut(in EasingFunc) EasingFunc {
	return func(t float64) float64 { return 1 - in(1-t) }
}

func easeInOut(in EasingFunc) EasingFunc {
	return func(t float64) float64 {
		if t < 0.5 {
			return in(2*t) / 2
		}
		return 1 - in(2-2*t)/2
	}
}

func quad(t float64) float64  { return t * t }
func cubic(t float64) float64 { return t * t * t }

// back pulls below zero before rising, so its mirror overshoots.
func back(t float64) float64 {
	const overshoot = 1.70158
	return t * t * ((overshoot+1)*t - overshoot)
}

func outBounce(t float64) float64 {
	const k, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return k * t * t
	case t < 2/d:
		t -= 1.5 / d
		return k*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return k*t*t + 0.9375
	default:
		t -= 2.625 / d
		return k*t*t + 0.984375
	}
}

func outElastic(t float64) float64 {
	if t <= 0 || t >= 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((10*t-0.75)*2*math.Pi/3) + 1
}

var (
	EaseLinear     EasingFunc = func(t float64) float64 { return t }
	EaseInQuad     EasingFunc = quad
	EaseOutQuad    EasingFunc = easeOut(quad)
	EaseInOutQuad  EasingFunc = easeInOut(quad)
	EaseInOutCubic EasingFunc = easeInOut(cubic)
	EaseOutBack    EasingFunc = easeOut(back)
	EaseOutElastic EasingFunc = outElastic
	EaseOutBounce  EasingFunc = outBounce

	// EaseOutCubic is the default for control transitions.
	EaseOutCubic EasingFunc = easeOut(cubic)
)

// easingNames are the names form files use.
var easingNames = map[string]EasingFunc{
	"linear":      EaseLinear,
	"ease-in":     EaseInQuad,
	"ease-out":    EaseOutQuad,
	"ease-in-out": EaseInOutQuad,
	"out-cubic":   EaseOutCubic,
	"cubic":       EaseInOutCubic,
	"back":        EaseOutBack,
	"elastic":     EaseOutElastic,
	"bounce":      EaseOutBounce,
}

// EasingByName returns the easing registered under name. The empty name
// selects EaseOutCubic.
func EasingByName(name string) (EasingFunc, error) {
	if name == "" {
		return EaseOutCubic, nil
	}
	fn, ok := easingNames[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}
