package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"reelspin/present"
	"reelspin/reel"
	"reelspin/spin"
)

const (
	tileWidth  = 12 // cells per tile, border included
	tileHeight = 5
	toastTicks = 180 // ~3s at 60 FPS
)

// ReelView draws the reel strip, the winner highlight, the result panel and
// the confetti burst on a tcell screen. It implements present.View,
// present.Toaster and present.ConfettiPresenter for the demo binary.
//
// Draw is called from the main loop only; the presenter's timer goroutines
// mutate view state through the mutex.
type ReelView struct {
	screen tcell.Screen

	mu          sync.Mutex
	items       []reel.Item
	offset      float64
	highlighted int // tile index, -1 when none
	bonusStyle  bool
	result      *present.ResultView
	coverSaved  bool
	toast       string
	toastStyle  tcell.Style
	toastTicks  int
	confetti    []particle
}

// NewReelView creates a view on an initialized screen.
func NewReelView(screen tcell.Screen) *ReelView {
	return &ReelView{
		screen:      screen,
		highlighted: -1,
	}
}

// Geometry reports the strip layout to the animation controller.
func (v *ReelView) Geometry() spin.Geometry {
	w, _ := v.screen.Size()
	return spin.Geometry{
		TileWidth:     tileWidth,
		ViewportWidth: float64(w),
	}
}

// SetStrip installs the tiles for a new spin and clears result state.
func (v *ReelView) SetStrip(items []reel.Item) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = items
	v.offset = 0
	v.highlighted = -1
	v.bonusStyle = false
	v.result = nil
	v.coverSaved = false
}

// SetOffset records the eased strip translation for the next Draw.
func (v *ReelView) SetOffset(offset float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.offset = offset
}

// Reset clears everything back to the idle screen.
func (v *ReelView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = nil
	v.offset = 0
	v.highlighted = -1
	v.result = nil
	v.coverSaved = false
	v.confetti = nil
}

// HighlightWinner styles the landed tile. The selector is the presenter's
// tile address ("tile-N").
func (v *ReelView) HighlightWinner(selector string, bonus bool) {
	var idx int
	if _, err := fmt.Sscanf(selector, "tile-%d", &idx); err != nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.highlighted = idx
	v.bonusStyle = bonus
}

// ShowResult swaps the strip for the result panel.
func (v *ReelView) ShowResult(view present.ResultView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.result = &view
}

// CoverSaved relabels the persist-cover hint after success.
func (v *ReelView) CoverSaved() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.coverSaved = true
}

// ShowToast displays a transient message line.
func (v *ReelView) ShowToast(message string, level present.ToastLevel) {
	style := tcell.StyleDefault
	switch level {
	case present.ToastSuccess:
		style = style.Foreground(tcell.ColorGreen)
	case present.ToastError:
		style = style.Foreground(tcell.ColorRed)
	default:
		style = style.Foreground(tcell.ColorYellow)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.toast = message
	v.toastStyle = style
	v.toastTicks = toastTicks
}

// Draw renders one frame. Called from the main loop at the animation
// cadence.
func (v *ReelView) Draw() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.screen.Clear()
	w, h := v.screen.Size()

	if v.result != nil {
		v.drawResult(w, h)
	} else if v.items != nil {
		v.drawStrip(w, h)
	} else {
		v.drawIdle(w, h)
	}

	v.stepConfetti(w, h)
	v.drawToast(w, h)
	v.screen.Show()
}

func (v *ReelView) drawIdle(w, h int) {
	drawCentered(v.screen, h/2, w, "press space to spin", tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// drawStrip renders the tile row at the current eased offset under the fixed
// center indicator.
func (v *ReelView) drawStrip(w, h int) {
	top := h/2 - tileHeight/2
	center := w / 2

	for i, item := range v.items {
		x := int(v.offset) + i*tileWidth
		if x+tileWidth < 0 || x >= w {
			continue
		}
		v.drawTile(x, top, i, item)
	}

	// Fixed landing indicator above and below the strip.
	indicator := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	v.screen.SetContent(center, top-1, '▼', nil, indicator)
	v.screen.SetContent(center, top+tileHeight, '▲', nil, indicator)
}

func (v *ReelView) drawTile(x, top, idx int, item reel.Item) {
	style := tcell.StyleDefault
	switch {
	case idx == v.highlighted && v.bonusStyle:
		style = style.Foreground(tcell.ColorBlack).Background(tcell.ColorFuchsia)
	case idx == v.highlighted:
		style = style.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	case item.Bonus:
		style = style.Foreground(tcell.ColorFuchsia)
	}

	icon := '★'
	label := "BONUS"
	if !item.Bonus {
		icon = item.Slot.Icon
		label = item.Slot.Label
	}
	runes := []rune(label)
	if len(runes) > tileWidth-2 {
		runes = runes[:tileWidth-2]
		label = string(runes)
	}

	for row := 0; row < tileHeight; row++ {
		for col := 0; col < tileWidth; col++ {
			ch := ' '
			switch {
			case row == 0 || row == tileHeight-1:
				ch = '─'
			case col == 0 || col == tileWidth-1:
				ch = '│'
			}
			v.screen.SetContent(x+col, top+row, ch, nil, style)
		}
	}
	v.screen.SetContent(x+tileWidth/2, top+1, icon, nil, style)
	drawText(v.screen, x+(tileWidth-len(runes))/2, top+3, label, style)
}

// drawResult renders the populated result panel.
func (v *ReelView) drawResult(w, h int) {
	r := v.result
	mid := h / 2

	title := tcell.StyleDefault.Bold(true)
	if r.Bonus {
		title = title.Foreground(tcell.ColorFuchsia)
	}

	drawCentered(v.screen, mid-3, w, string(r.Icon), title)
	drawCentered(v.screen, mid-1, w, r.Title, title)
	if r.Badge != "" {
		drawCentered(v.screen, mid, w, "["+r.Badge+"]", tcell.StyleDefault.Foreground(tcell.ColorAqua))
	}
	if !r.Bonus {
		bar := progressBar(r.Progress, 20)
		drawCentered(v.screen, mid+1, w, bar, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}
	if r.NearMiss {
		drawCentered(v.screen, mid+2, w, "so close to the bonus!", tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	hint := "esc: close"
	if r.CoverEnabled {
		if v.coverSaved {
			hint = "cover saved ✓ · esc: close"
		} else {
			hint = "c: set as cover · esc: close"
		}
	}
	drawCentered(v.screen, mid+4, w, hint, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (v *ReelView) drawToast(w, h int) {
	if v.toastTicks <= 0 {
		return
	}
	v.toastTicks--
	drawCentered(v.screen, h-2, w, v.toast, v.toastStyle)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		s.SetContent(x+i, y, ch, nil, style)
	}
}

func drawCentered(s tcell.Screen, y, width int, text string, style tcell.Style) {
	drawText(s, (width-len([]rune(text)))/2, y, text, style)
}

func progressBar(p float64, width int) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	filled := int(p * float64(width))
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}
