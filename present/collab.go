package present

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ToastLevel classifies a toast message
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

func (l ToastLevel) String() string {
	switch l {
	case ToastInfo:
		return "info"
	case ToastSuccess:
		return "success"
	case ToastError:
		return "error"
	default:
		return "unknown"
	}
}

// Toaster presents transient notifications. The presenter calls it but owns
// none of its implementation.
type Toaster interface {
	ShowToast(message string, level ToastLevel)
}

// ConfettiOptions tunes one celebration burst.
type ConfettiOptions struct {
	Palette   []string // color names, renderer-interpreted
	Particles int
}

// ConfettiPresenter fires a celebration burst in the host view.
type ConfettiPresenter interface {
	Burst(opts ConfettiOptions)
}

// Analytics receives best-effort usage events. Implementations may block;
// the presenter always calls TrackEvent from its own goroutine and swallows
// the error.
type Analytics interface {
	TrackEvent(ctx context.Context, eventType, objectID string) error
}

// NopAnalytics discards every event.
type NopAnalytics struct{}

func (NopAnalytics) TrackEvent(context.Context, string, string) error { return nil }

// CoverClient persists the chosen winner as a cover selection over REST.
// URL and payload construction are caller-supplied through Accessors.
type CoverClient struct {
	HTTP *http.Client
}

// NewCoverClient creates a client with a bounded request timeout.
func NewCoverClient() *CoverClient {
	return &CoverClient{
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

// PersistCover POSTs the winner payload to the cover endpoint. Any non-2xx
// status is an error.
func (c *CoverClient) PersistCover(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode cover payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build cover request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("persist cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("persist cover: unexpected status %d", resp.StatusCode)
	}
	return nil
}
