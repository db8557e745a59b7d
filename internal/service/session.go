package service

import (
	"sync"
	"time"

	"github.com/kexin8/multichat/internal/domain"
)

// SessionController tracks the currently active session selector. It has two
// states: NEW (no concrete id minted yet) and BOUND (a concrete id is fixed).
// The first append while NEW mints a timestamp-derived id that stays sticky
// until the selector is reset or the bound session is deleted.
type SessionController struct {
	mu    sync.Mutex
	bound string
	now   func() time.Time
}

// NewSessionController creates a controller in the NEW state.
func NewSessionController() *SessionController {
	return &SessionController{now: time.Now}
}

// Resolve returns the bound session id, minting a fresh one if the controller
// is in the NEW state.
func (c *SessionController) Resolve() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bound == "" {
		c.bound = c.now().UTC().Format("2006_01_02_15_04_05")
	}
	return c.bound
}

// Select binds the controller to an existing session id.
func (c *SessionController) Select(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bound = sessionID
}

// Reset returns the controller to the NEW state; a later Resolve mints a
// fresh id independent of any previously minted one.
func (c *SessionController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bound = ""
}

// Active returns the bound id, or false while in the NEW state.
func (c *SessionController) Active() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bound, c.bound != ""
}

// HandleDeleted resets the controller only when the deleted id is the
// currently bound one.
func (c *SessionController) HandleDeleted(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bound == sessionID {
		c.bound = ""
	}
}

// ResolveSessionID maps a caller-supplied session key to a concrete id. The
// empty string and the "new session" pseudo-key go through the controller;
// any other key binds the controller to it.
func (s *Service) ResolveSessionID(requested string) string {
	if requested == "" || requested == domain.NewSessionKey {
		return s.sessions.Resolve()
	}
	s.sessions.Select(requested)
	return requested
}
