// Package admin implements the panel unlock gate.
//
// This gate is NOT authentication. It preserves the original site's
// behaviour: a fixed string compared against user input unlocks the admin
// panel, and both the comparison and the panel ship to every client. It is
// obfuscation for a single-operator deployment. Upgrading it to a real,
// server-verified credential would be an observable behaviour change and is
// deliberately out of scope; anyone deploying this should know the panel is
// effectively public.
package admin

import "crypto/subtle"

// Gate compares unlock attempts against the configured panel and dark-room
// keys. An empty configured key keeps that gate locked.
type Gate struct {
	panelKey    string
	darkRoomKey string
}

// NewGate constructs a gate with the configured keys.
func NewGate(panelKey, darkRoomKey string) *Gate {
	return &Gate{panelKey: panelKey, darkRoomKey: darkRoomKey}
}

// Unlock reports whether the input matches the panel key.
func (g *Gate) Unlock(input string) bool {
	return matches(g.panelKey, input)
}

// UnlockDarkRoom reports whether the input matches the dark-room key.
func (g *Gate) UnlockDarkRoom(input string) bool {
	return matches(g.darkRoomKey, input)
}

// matches does a constant-time compare. This avoids a timing side channel
// but changes nothing about the fundamental weakness documented above.
func matches(key, input string) bool {
	if key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(input)) == 1
}
