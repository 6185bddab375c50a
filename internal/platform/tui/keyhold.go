package tui

import "time"

// KeyHold turns terminal auto-repeat into press/release pairs.
// Terminals report only presses, and only the most recent key repeats, so a
// single key is tracked: it counts as released once it has gone longer than
// the release window without a repeat, or immediately when another key is
// pressed.
type KeyHold struct {
	releaseAfter time.Duration
	key          string
	lastSeen     time.Time
}

// NewKeyHold creates a tracker with the given release window.
func NewKeyHold(releaseAfter time.Duration) *KeyHold {
	return &KeyHold{releaseAfter: releaseAfter}
}

// Press records a press or auto-repeat of key at now.
// Returns true if this is a new press rather than a repeat.
func (h *KeyHold) Press(key string, now time.Time) bool {
	fresh := h.key != key
	h.key = key
	h.lastSeen = now
	return fresh
}

// Expire returns the held key if its release window has passed at now,
// and stops tracking it.
func (h *KeyHold) Expire(now time.Time) (string, bool) {
	if h.key == "" || now.Sub(h.lastSeen) < h.releaseAfter {
		return "", false
	}
	key := h.key
	h.key = ""
	return key, true
}

// Held returns the key currently considered down, or "".
func (h *KeyHold) Held() string {
	return h.key
}

// Reset forgets the held key without reporting a release.
func (h *KeyHold) Reset() {
	h.key = ""
}
