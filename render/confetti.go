package render

import (
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"reelspin/present"
)

// confettiRunes are the particle glyphs, picked per particle.
var confettiRunes = []rune{'*', '+', '·', 'o', '✦'}

// particle is one falling confetti glyph in cell coordinates.
type particle struct {
	x, y   float64
	vx, vy float64
	glyph  rune
	color  tcell.Color
	life   int // remaining frames
}

// Burst spawns a celebration shower from the top of the screen. Palette
// names come from the presenter; unknown names fall back to white.
func (v *ReelView) Burst(opts present.ConfettiOptions) {
	w, _ := v.screen.Size()

	colors := make([]tcell.Color, 0, len(opts.Palette))
	for _, name := range opts.Palette {
		if c, ok := tcell.ColorNames[name]; ok {
			colors = append(colors, c)
		}
	}
	if len(colors) == 0 {
		colors = []tcell.Color{tcell.ColorWhite}
	}

	burst := make([]particle, opts.Particles)
	for i := range burst {
		burst[i] = particle{
			x:     rand.Float64() * float64(w),
			y:     -rand.Float64() * 5,
			vx:    rand.Float64()*0.6 - 0.3,
			vy:    0.2 + rand.Float64()*0.4,
			glyph: confettiRunes[rand.IntN(len(confettiRunes))],
			color: colors[rand.IntN(len(colors))],
			life:  90 + rand.IntN(90),
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.confetti = append(v.confetti, burst...)
}

// stepConfetti advances and draws live particles. Caller holds v.mu.
func (v *ReelView) stepConfetti(w, h int) {
	live := v.confetti[:0]
	for _, p := range v.confetti {
		p.x += p.vx
		p.y += p.vy
		p.life--
		if p.life <= 0 || p.y >= float64(h) {
			continue
		}
		if x, y := int(p.x), int(p.y); x >= 0 && x < w && y >= 0 {
			v.screen.SetContent(x, y, p.glyph, nil, tcell.StyleDefault.Foreground(p.color))
		}
		live = append(live, p)
	}
	v.confetti = live
}
