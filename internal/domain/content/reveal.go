package content

import (
	"math"
	"sync/atomic"
	"time"
)

// EaseOut is the easing curve the page uses for reveals
const EaseOut = "power3.out"

// RevealTrigger fires once when an element scrolls past Threshold of the
// viewport height (0.75 means "element top at 75% of the viewport").
type RevealTrigger struct {
	Threshold float64
	Duration  time.Duration
	Stagger   time.Duration
	Ease      string

	fired atomic.Bool
}

// Observe reports whether this observation fires the reveal. topRatio is the
// element's top edge divided by the viewport height. Only the first
// qualifying observation returns true.
func (t *RevealTrigger) Observe(topRatio float64) bool {
	if topRatio > t.Threshold {
		return false
	}
	return t.fired.CompareAndSwap(false, true)
}

// Fired reports whether the reveal already ran
func (t *RevealTrigger) Fired() bool {
	return t.fired.Load()
}

// ScrubProgress maps an element's transit through the viewport to [0,1]:
// 0 when its top enters at the bottom edge, 1 when its bottom leaves at the top.
func ScrubProgress(elementTop, elementHeight, viewportHeight float64) float64 {
	span := viewportHeight + elementHeight
	if span <= 0 {
		return 0
	}
	return clamp01((viewportHeight - elementTop) / span)
}

// EaseOutCubic is 1-(1-t)^3 over t clamped to [0,1]
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// CountUp returns the displayed value of a statistic counting up to end
func CountUp(end int, elapsed, duration time.Duration) int {
	if duration <= 0 || elapsed >= duration {
		return end
	}
	if elapsed <= 0 {
		return 0
	}
	progress := float64(elapsed) / float64(duration)
	return int(math.Floor(EaseOutCubic(progress) * float64(end)))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
