package present

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"reelspin/constants"
	"reelspin/reel"
)

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

type fakeView struct {
	mu          sync.Mutex
	highlighted []string
	bonusStyle  bool
	results     []ResultView
	saved       int
}

func (v *fakeView) HighlightWinner(selector string, bonus bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.highlighted = append(v.highlighted, selector)
	v.bonusStyle = bonus
}

func (v *fakeView) ShowResult(view ResultView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.results = append(v.results, view)
}

func (v *fakeView) CoverSaved() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.saved++
}

func (v *fakeView) resultCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.results)
}

type fakeToaster struct {
	mu     sync.Mutex
	toasts []ToastLevel
}

func (f *fakeToaster) ShowToast(message string, level ToastLevel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toasts = append(f.toasts, level)
}

type fakeConfetti struct {
	mu     sync.Mutex
	bursts []ConfettiOptions
}

func (f *fakeConfetti) Burst(opts ConfettiOptions) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bursts = append(f.bursts, opts)
}

func (f *fakeConfetti) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bursts)
}

type fakeAnalytics struct {
	events chan string
}

func (f *fakeAnalytics) TrackEvent(ctx context.Context, eventType, objectID string) error {
	f.events <- eventType
	return nil
}

func winnerSession() *reel.Session {
	slot := &reel.Slot{ID: "a", Label: "A", Icon: 'A', Name: "Alpha", Progress: 0.4, Badge: "new"}
	return &reel.Session{
		Winner:      slot,
		WinnerIndex: 30,
		BonusIndex:  -1,
	}
}

func bonusSession() *reel.Session {
	return &reel.Session{
		WinnerIndex: 30,
		BonusIndex:  30,
		BonusLanded: true,
	}
}

func testConfig(view *fakeView, toaster *fakeToaster, confetti *fakeConfetti) Config {
	return Config{
		SessionID:      "session-1",
		View:           view,
		Toaster:        toaster,
		Confetti:       confetti,
		PreResultDelay: 2 * time.Millisecond,
		CrossFadeDelay: 2 * time.Millisecond,
	}
}

// TestPresentSequence verifies highlight fires immediately, then the result
// view, then the confetti burst
func TestPresentSequence(t *testing.T) {
	view := &fakeView{}
	confetti := &fakeConfetti{}
	p := NewPresenter(testConfig(view, &fakeToaster{}, confetti))

	p.Present(winnerSession())

	view.mu.Lock()
	if len(view.highlighted) != 1 || view.highlighted[0] != "tile-30" {
		t.Errorf("highlight = %v, want [tile-30]", view.highlighted)
	}
	if view.bonusStyle {
		t.Error("normal winner should not use the bonus style")
	}
	if len(view.results) != 0 {
		t.Error("result view should wait for the hold delay")
	}
	view.mu.Unlock()

	waitFor(t, time.Second, func() bool { return confetti.count() == 1 })

	view.mu.Lock()
	r := view.results[0]
	view.mu.Unlock()
	if r.Title != "Alpha" || r.Badge != "new" || r.Icon != 'A' {
		t.Errorf("result copy = %+v, want winner fields", r)
	}
	if !r.CoverEnabled {
		t.Error("cover action should be available for a normal winner")
	}

	confetti.mu.Lock()
	burst := confetti.bursts[0]
	confetti.mu.Unlock()
	if burst.Particles != constants.ConfettiParticles {
		t.Errorf("particles = %d, want %d", burst.Particles, constants.ConfettiParticles)
	}

	waitFor(t, time.Second, func() bool { return p.Pending() == 0 })
}

// TestPresentBonus verifies the bonus landing gets its own style, copy,
// bigger burst, and the analytics event
func TestPresentBonus(t *testing.T) {
	view := &fakeView{}
	confetti := &fakeConfetti{}
	analytics := &fakeAnalytics{events: make(chan string, 1)}

	cfg := testConfig(view, &fakeToaster{}, confetti)
	cfg.Analytics = analytics
	p := NewPresenter(cfg)

	p.Present(bonusSession())

	if !view.bonusStyle {
		t.Error("bonus landing should use the bonus highlight style")
	}

	select {
	case ev := <-analytics.events:
		if ev != "bonus_landed" {
			t.Errorf("event = %q, want bonus_landed", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("analytics event never fired")
	}

	waitFor(t, time.Second, func() bool { return confetti.count() == 1 })

	view.mu.Lock()
	r := view.results[0]
	view.mu.Unlock()
	if !r.Bonus {
		t.Error("result should be the bonus copy")
	}
	if r.CoverEnabled {
		t.Error("cover action must be absent for a bonus landing")
	}

	confetti.mu.Lock()
	burst := confetti.bursts[0]
	confetti.mu.Unlock()
	if burst.Particles != constants.BonusConfettiParticles {
		t.Errorf("particles = %d, want %d", burst.Particles, constants.BonusConfettiParticles)
	}
}

// TestResetCancelsPresentation verifies reset mid-hold leaves no timers and
// never shows the result
func TestResetCancelsPresentation(t *testing.T) {
	view := &fakeView{}
	confetti := &fakeConfetti{}

	cfg := testConfig(view, &fakeToaster{}, confetti)
	cfg.PreResultDelay = time.Hour
	p := NewPresenter(cfg)

	p.Present(winnerSession())
	p.Reset()
	p.Reset() // idempotent

	if p.Pending() != 0 {
		t.Errorf("pending = %d after reset, want 0", p.Pending())
	}
	time.Sleep(10 * time.Millisecond)
	if view.resultCount() != 0 {
		t.Error("result view fired after reset")
	}
	if confetti.count() != 0 {
		t.Error("confetti fired after reset")
	}
}

// TestPersistWinnerSuccess verifies the happy path relabels the control and
// toasts success
func TestPersistWinnerSuccess(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	view := &fakeView{}
	toaster := &fakeToaster{}
	cfg := testConfig(view, toaster, &fakeConfetti{})
	cfg.Accessors.CoverURL = func(sessionID string) string {
		return srv.URL + "/sessions/" + sessionID + "/cover"
	}
	p := NewPresenter(cfg)
	p.Present(winnerSession())

	if err := p.PersistWinner(context.Background()); err != nil {
		t.Fatalf("PersistWinner: %v", err)
	}
	if gotPath != "/sessions/session-1/cover" {
		t.Errorf("path = %q", gotPath)
	}
	if view.saved != 1 {
		t.Error("view should be relabeled on success")
	}
	if !p.CoverSaved() {
		t.Error("CoverSaved should report true")
	}
	toaster.mu.Lock()
	defer toaster.mu.Unlock()
	if len(toaster.toasts) != 1 || toaster.toasts[0] != ToastSuccess {
		t.Errorf("toasts = %v, want one success", toaster.toasts)
	}
}

// TestPersistWinnerFailureRecovers verifies a failed POST re-enables the
// action and shows an error toast
func TestPersistWinnerFailureRecovers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	view := &fakeView{}
	toaster := &fakeToaster{}
	cfg := testConfig(view, toaster, &fakeConfetti{})
	cfg.Accessors.CoverURL = func(string) string { return srv.URL }
	p := NewPresenter(cfg)
	p.Present(winnerSession())

	if err := p.PersistWinner(context.Background()); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	toaster.mu.Lock()
	if len(toaster.toasts) != 1 || toaster.toasts[0] != ToastError {
		t.Errorf("toasts = %v, want one error", toaster.toasts)
	}
	toaster.mu.Unlock()

	// The control re-arms: a retry against a fixed server succeeds.
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ok.Close()
	p.cfg.Accessors.CoverURL = func(string) string { return ok.URL }

	if err := p.PersistWinner(context.Background()); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
}

// TestPersistWinnerRefusedForBonus verifies the bonus landing has no cover
// action
func TestPersistWinnerRefusedForBonus(t *testing.T) {
	p := NewPresenter(testConfig(&fakeView{}, &fakeToaster{}, &fakeConfetti{}))
	p.Present(bonusSession())

	if err := p.PersistWinner(context.Background()); err != ErrNoCoverForBonus {
		t.Errorf("err = %v, want ErrNoCoverForBonus", err)
	}
}

// TestPersistWinnerWithoutResult verifies the action is refused before any
// presentation
func TestPersistWinnerWithoutResult(t *testing.T) {
	p := NewPresenter(testConfig(&fakeView{}, &fakeToaster{}, &fakeConfetti{}))
	if err := p.PersistWinner(context.Background()); err != ErrNoResult {
		t.Errorf("err = %v, want ErrNoResult", err)
	}
}
