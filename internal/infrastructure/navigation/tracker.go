// Package navigation provides an in-process implementation of the navigation
// layer. The session core only asks it to move to fixed destinations; what a
// "move" means (history push, full reload, UI swap) is up to the embedding
// application.
package navigation

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// Tracker tracks the current location and applies requested moves in place.
type Tracker struct {
	mu   sync.RWMutex
	path string
	log  zerolog.Logger
}

var _ ports.Navigator = (*Tracker)(nil)

// NewTracker creates a Tracker starting at path.
func NewTracker(path string, log zerolog.Logger) *Tracker {
	return &Tracker{path: path, log: log}
}

// Current returns the path of the current location.
func (t *Tracker) Current() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.path
}

// To moves the current location to path.
func (t *Tracker) To(path string) {
	t.mu.Lock()
	from := t.path
	t.path = path
	t.mu.Unlock()

	t.log.Debug().Str("from", from).Str("to", path).Msg("navigation")
}
