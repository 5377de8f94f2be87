package present

import (
	"fmt"

	"reelspin/reel"
)

// Accessors is the view-binding half of the presenter configuration: how to
// read display fields off a Slot, how to build the cover-persistence request,
// and how to address the winner tile for the post-hoc highlight. Every field
// has a usable default.
type Accessors struct {
	Label    func(s *reel.Slot) string
	Icon     func(s *reel.Slot) rune
	Name     func(s *reel.Slot) string
	Badge    func(s *reel.Slot) string
	Progress func(s *reel.Slot) float64

	// CoverURL and CoverPayload build the persistCover request.
	CoverURL     func(sessionID string) string
	CoverPayload func(sessionID string, s *reel.Slot) any

	// Highlight maps the winner tile index to a view-addressable selector.
	Highlight func(tileIndex int) string
}

type coverPayload struct {
	SessionID string `json:"session_id"`
	SlotID    string `json:"slot_id"`
	Name      string `json:"name"`
}

// DefaultAccessors reads Slot fields directly and targets a local cover
// endpoint. Callers override individual fields as needed.
func DefaultAccessors() Accessors {
	return Accessors{
		Label:    func(s *reel.Slot) string { return s.Label },
		Icon:     func(s *reel.Slot) rune { return s.Icon },
		Name:     func(s *reel.Slot) string { return s.Name },
		Badge:    func(s *reel.Slot) string { return s.Badge },
		Progress: func(s *reel.Slot) float64 { return s.Progress },
		CoverURL: func(sessionID string) string {
			return "http://localhost:8080/sessions/" + sessionID + "/cover"
		},
		CoverPayload: func(sessionID string, s *reel.Slot) any {
			return coverPayload{SessionID: sessionID, SlotID: s.ID, Name: s.Name}
		},
		Highlight: func(tileIndex int) string {
			return fmt.Sprintf("tile-%d", tileIndex)
		},
	}
}

// normalize fills any nil accessor with its default so the presenter never
// nil-checks per call.
func (a Accessors) normalize() Accessors {
	def := DefaultAccessors()
	if a.Label == nil {
		a.Label = def.Label
	}
	if a.Icon == nil {
		a.Icon = def.Icon
	}
	if a.Name == nil {
		a.Name = def.Name
	}
	if a.Badge == nil {
		a.Badge = def.Badge
	}
	if a.Progress == nil {
		a.Progress = def.Progress
	}
	if a.CoverURL == nil {
		a.CoverURL = def.CoverURL
	}
	if a.CoverPayload == nil {
		a.CoverPayload = def.CoverPayload
	}
	if a.Highlight == nil {
		a.Highlight = def.Highlight
	}
	return a
}
