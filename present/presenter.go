package present

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"reelspin/constants"
	"reelspin/reel"
)

// Sentinel errors
var (
	ErrNoCoverForBonus = errors.New("bonus result has no slot to persist")
	ErrCoverInFlight   = errors.New("a cover request is already in flight")
	ErrNoResult        = errors.New("no result is being presented")
)

// ResultView is the populated result screen content handed to the view on
// cross-fade.
type ResultView struct {
	Title    string
	Badge    string
	Icon     rune
	Progress float64
	Bonus    bool
	NearMiss bool

	// CoverEnabled is false for bonus results: there is no underlying Slot
	// to persist as a cover.
	CoverEnabled bool
}

// View is the rendering surface the presenter drives. Implemented by the
// tcell layer; the presenter owns sequencing, the view owns drawing.
type View interface {
	// HighlightWinner styles the landed tile. selector comes from the
	// Highlight accessor; bonus selects the rare-event style.
	HighlightWinner(selector string, bonus bool)

	// ShowResult cross-fades the reel out and the result view in.
	ShowResult(view ResultView)

	// CoverSaved relabels the persist-cover control after success.
	CoverSaved()
}

// Config wires a presenter. Zero delays fall back to the constants; nil
// collaborators are replaced with no-ops.
type Config struct {
	SessionID string
	Accessors Accessors

	View     View
	Toaster  Toaster
	Confetti ConfettiPresenter

	Cover     *CoverClient
	Analytics Analytics

	PreResultDelay time.Duration
	CrossFadeDelay time.Duration
}

// Presenter turns a landed session into the result sequence: winner
// highlight, a short hold, the cross-fade to the result view, and the
// confetti burst. It also owns the persist-cover action.
type Presenter struct {
	cfg Config

	mu        sync.Mutex
	session   *reel.Session
	holdTimer *time.Timer
	fadeTimer *time.Timer

	coverBusy  atomic.Bool
	coverSaved atomic.Bool

	// pending counts scheduled callbacks so tests can assert none survive
	// a reset
	pending atomic.Int32
}

// NewPresenter creates a presenter with defaults filled in.
func NewPresenter(cfg Config) *Presenter {
	cfg.Accessors = cfg.Accessors.normalize()
	if cfg.Cover == nil {
		cfg.Cover = NewCoverClient()
	}
	if cfg.Analytics == nil {
		cfg.Analytics = NopAnalytics{}
	}
	if cfg.PreResultDelay <= 0 {
		cfg.PreResultDelay = constants.PreResultDelay
	}
	if cfg.CrossFadeDelay <= 0 {
		cfg.CrossFadeDelay = constants.CrossFadeDelay
	}
	return &Presenter{cfg: cfg}
}

// Present starts the result sequence for a landed session: highlight now,
// cross-fade after the hold, confetti once the result view is in. Bonus
// landings additionally fire a best-effort analytics event.
func (p *Presenter) Present(sess *reel.Session) {
	p.mu.Lock()
	p.clearTimersLocked()
	p.session = sess
	p.coverBusy.Store(false)
	p.coverSaved.Store(false)

	if p.cfg.View != nil {
		p.cfg.View.HighlightWinner(p.cfg.Accessors.Highlight(sess.WinnerIndex), sess.BonusLanded)
	}

	p.pending.Add(1)
	p.holdTimer = time.AfterFunc(p.cfg.PreResultDelay, func() {
		defer p.pending.Add(-1)
		p.crossFade()
	})
	p.mu.Unlock()

	if sess.BonusLanded {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = p.cfg.Analytics.TrackEvent(ctx, "bonus_landed", p.cfg.SessionID)
		}()
	}
}

// crossFade swaps the reel for the result view after the hold, then arms
// the fade timer that fires the celebration once the fade settles.
func (p *Presenter) crossFade() {
	p.mu.Lock()
	sess := p.session
	if sess == nil {
		p.mu.Unlock()
		return
	}

	view := p.buildResult(sess)
	if p.cfg.View != nil {
		p.cfg.View.ShowResult(view)
	}

	p.pending.Add(1)
	p.fadeTimer = time.AfterFunc(p.cfg.CrossFadeDelay, func() {
		defer p.pending.Add(-1)
		p.celebrate(view.Bonus)
	})
	p.mu.Unlock()
}

// celebrate fires the confetti burst once the result view has faded in.
func (p *Presenter) celebrate(bonus bool) {
	p.mu.Lock()
	live := p.session != nil
	p.mu.Unlock()
	if !live || p.cfg.Confetti == nil {
		return
	}
	p.cfg.Confetti.Burst(confettiFor(bonus))
}

// confettiFor selects the celebration palette and particle count.
func confettiFor(bonus bool) ConfettiOptions {
	if bonus {
		return ConfettiOptions{
			Palette:   []string{"gold", "fuchsia", "aqua", "white"},
			Particles: constants.BonusConfettiParticles,
		}
	}
	return ConfettiOptions{
		Palette:   []string{"yellow", "green", "blue", "red"},
		Particles: constants.ConfettiParticles,
	}
}

// buildResult populates the result copy from the winner Slot, or the
// bonus-specific copy when the sentinel itself landed.
func (p *Presenter) buildResult(sess *reel.Session) ResultView {
	if sess.BonusLanded {
		return ResultView{
			Title:        "Jackpot round!",
			Badge:        "BONUS",
			Icon:         '★',
			Bonus:        true,
			CoverEnabled: false,
		}
	}

	a := p.cfg.Accessors
	w := sess.Winner
	return ResultView{
		Title:        a.Name(w),
		Badge:        a.Badge(w),
		Icon:         a.Icon(w),
		Progress:     a.Progress(w),
		NearMiss:     sess.NearMiss,
		CoverEnabled: true,
	}
}

// PersistWinner runs the persist-cover action: POST the winner, relabel the
// control on success, re-enable it and toast on failure. Unavailable for
// bonus results and while a previous request is still in flight.
func (p *Presenter) PersistWinner(ctx context.Context) error {
	p.mu.Lock()
	sess := p.session
	p.mu.Unlock()

	if sess == nil {
		return ErrNoResult
	}
	if sess.BonusLanded || sess.Winner == nil {
		return ErrNoCoverForBonus
	}
	if !p.coverBusy.CompareAndSwap(false, true) {
		return ErrCoverInFlight
	}

	a := p.cfg.Accessors
	url := a.CoverURL(p.cfg.SessionID)
	payload := a.CoverPayload(p.cfg.SessionID, sess.Winner)

	err := p.cfg.Cover.PersistCover(ctx, url, payload)
	if err != nil {
		// Recover locally: the control re-arms and the session stays usable.
		p.coverBusy.Store(false)
		if p.cfg.Toaster != nil {
			p.cfg.Toaster.ShowToast("Could not save cover, try again", ToastError)
		}
		return err
	}

	p.coverSaved.Store(true)
	if p.cfg.View != nil {
		p.cfg.View.CoverSaved()
	}
	if p.cfg.Toaster != nil {
		p.cfg.Toaster.ShowToast("Winner saved as cover", ToastSuccess)
	}
	return nil
}

// CoverSaved reports whether the persist action already succeeded.
func (p *Presenter) CoverSaved() bool {
	return p.coverSaved.Load()
}

// Reset cancels both presentation timers and forgets the session. Safe to
// call at any point and idempotent.
func (p *Presenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clearTimersLocked()
	p.session = nil
}

// clearTimersLocked stops both timers, keeping the pending count exact.
func (p *Presenter) clearTimersLocked() {
	if p.holdTimer != nil {
		if p.holdTimer.Stop() {
			p.pending.Add(-1)
		}
		p.holdTimer = nil
	}
	if p.fadeTimer != nil {
		if p.fadeTimer.Stop() {
			p.pending.Add(-1)
		}
		p.fadeTimer = nil
	}
}

// Pending reports scheduled callbacks still outstanding. Zero after a reset
// has fully settled.
func (p *Presenter) Pending() int {
	return int(p.pending.Load())
}
