package spin

import (
	"testing"
	"time"

	"reelspin/constants"
)

// TestEaseOutCubic verifies the curve is monotone from 0 to 1 with no
// overshoot
func TestEaseOutCubic(t *testing.T) {
	if got := EaseOutCubic(0); got != 0 {
		t.Errorf("EaseOutCubic(0) = %f, want 0", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Errorf("EaseOutCubic(1) = %f, want 1", got)
	}
	if got := EaseOutCubic(-0.5); got != 0 {
		t.Errorf("EaseOutCubic(-0.5) = %f, want 0", got)
	}
	if got := EaseOutCubic(1.5); got != 1 {
		t.Errorf("EaseOutCubic(1.5) = %f, want 1", got)
	}

	prev := 0.0
	for p := 0.01; p <= 1.0; p += 0.01 {
		v := EaseOutCubic(p)
		if v < prev {
			t.Fatalf("easing not monotone at p=%f: %f < %f", p, v, prev)
		}
		if v > 1 {
			t.Fatalf("easing overshoots at p=%f: %f", p, v)
		}
		prev = v
	}
}

// TestSpinDurationClamp verifies the 3000-6000ms window and monotonicity in
// travel distance
func TestSpinDurationClamp(t *testing.T) {
	if d := SpinDuration(0); d != constants.MinSpinDuration {
		t.Errorf("zero travel: %v, want %v", d, constants.MinSpinDuration)
	}
	if d := SpinDuration(-100); d != constants.MinSpinDuration {
		t.Errorf("short travel: %v, want %v", d, constants.MinSpinDuration)
	}
	if d := SpinDuration(-1e6); d != constants.MaxSpinDuration {
		t.Errorf("huge travel: %v, want %v", d, constants.MaxSpinDuration)
	}

	prev := time.Duration(0)
	for off := 0.0; off < 10000; off += 50 {
		d := SpinDuration(-off)
		if d < prev {
			t.Fatalf("duration not monotone at offset %f: %v < %v", off, d, prev)
		}
		if d < constants.MinSpinDuration || d > constants.MaxSpinDuration {
			t.Fatalf("duration %v outside window at offset %f", d, off)
		}
		prev = d
	}
}

// TestTerminalOffsetCentersWinner verifies the geometry round trip: the
// terminal offset puts the winner tile under the viewport center
func TestTerminalOffsetCentersWinner(t *testing.T) {
	g := Geometry{TileWidth: 10, ViewportWidth: 80}

	off := TerminalOffset(g, 21, 0)
	if off != -175 {
		t.Errorf("TerminalOffset = %f, want -175", off)
	}
	if idx := CenteredTile(g, off); idx != 21 {
		t.Errorf("CenteredTile = %d, want 21", idx)
	}

	// Jitter below half a tile never changes the centered index.
	for idx := 5; idx < 60; idx += 7 {
		jitter := constants.MaxJitterFraction * g.TileWidth
		off := TerminalOffset(g, idx, jitter)
		if got := CenteredTile(g, off); got != idx {
			t.Errorf("index %d with jitter: centered on %d", idx, got)
		}
	}
}

// TestCenteredTileFloor verifies offsets before the strip start clamp to
// tile zero
func TestCenteredTileFloor(t *testing.T) {
	g := Geometry{TileWidth: 10, ViewportWidth: 80}
	if idx := CenteredTile(g, 1000); idx != 0 {
		t.Errorf("CenteredTile far right = %d, want 0", idx)
	}
}
