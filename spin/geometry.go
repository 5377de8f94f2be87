package spin

import (
	"math"
	"time"

	"reelspin/constants"
)

// Geometry describes the strip layout the binding layer exposes to the
// controller. Units are whatever the renderer draws in (cells, pixels);
// the controller only needs them to be consistent.
type Geometry struct {
	TileWidth     float64 // width of one tile along the strip
	ViewportWidth float64 // width of the visible window
}

// TerminalOffset computes the translation that centers the winner tile under
// the fixed viewport indicator. jitter perturbs the landing point so repeat
// spins do not land pixel-identically; callers keep it below
// MaxJitterFraction of one tile width.
func TerminalOffset(g Geometry, winnerIndex int, jitter float64) float64 {
	tileCenter := (float64(winnerIndex) + 0.5) * g.TileWidth
	viewportCenter := g.ViewportWidth / 2
	return -(tileCenter - viewportCenter + jitter)
}

// SpinDuration maps travel distance to animation time, clamped to the
// 3-6 second window. Monotonically increasing in |offset| between the
// clamps.
func SpinDuration(offset float64) time.Duration {
	ms := math.Abs(offset) * constants.DurationPerUnit
	d := time.Duration(ms * float64(time.Millisecond))
	if d < constants.MinSpinDuration {
		return constants.MinSpinDuration
	}
	if d > constants.MaxSpinDuration {
		return constants.MaxSpinDuration
	}
	return d
}

// EaseOutCubic is the deceleration curve 1-(1-p)^3: fast start, smooth
// landing, no overshoot.
func EaseOutCubic(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	inv := 1 - p
	return 1 - inv*inv*inv
}

// CenteredTile returns the tile index currently under the viewport center
// for a rendered offset. The audio layer uses this to fire boundary ticks.
func CenteredTile(g Geometry, offset float64) int {
	pos := g.ViewportWidth/2 - offset
	idx := int(pos / g.TileWidth)
	if idx < 0 {
		idx = 0
	}
	return idx
}
