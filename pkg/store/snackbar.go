package store

import (
	"encoding/json"
	"sync"
	"time"
)

// Type classifies a snackbar message.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// DefaultTimeout is how long a message stays visible before auto-dismiss.
const DefaultTimeout = 3 * time.Second

// fadeOutGrace matches the dismiss-animation duration on the rendering
// side; the message is kept (invisible) until the animation can finish.
const fadeOutGrace = 300 * time.Millisecond

// Message is the current snackbar content.
type Message struct {
	Message   string        `json:"message"`
	Type      Type          `json:"type"`
	Timeout   time.Duration `json:"timeout"`
	IsVisible bool          `json:"isVisible"`
}

// MarshalJSON renders Timeout as integer milliseconds; a raw Duration would
// serialize as nanoseconds.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message   string `json:"message"`
		Type      Type   `json:"type"`
		Timeout   int64  `json:"timeout"`
		IsVisible bool   `json:"isVisible"`
	}{
		Message:   m.Message,
		Type:      m.Type,
		Timeout:   m.Timeout.Milliseconds(),
		IsVisible: m.IsVisible,
	})
}

// Snackbar holds at most one transient message and walks it through
// visible -> fading out -> cleared. A new Show supersedes whatever is in
// flight: the old timers are generation-checked so a late firing never
// clobbers a newer message.
type Snackbar struct {
	mu      sync.Mutex
	current *Message
	gen     uint64
	grace   time.Duration
	dismiss *time.Timer
	clear   *time.Timer
	closed  bool
}

func NewSnackbar() *Snackbar {
	return &Snackbar{grace: fadeOutGrace}
}

// Show displays a message. A non-positive timeout disables auto-dismiss and
// the message persists until Hide is called.
func (s *Snackbar) Show(message string, typ Type, timeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.gen++
	s.stopTimersLocked()
	s.current = &Message{
		Message:   message,
		Type:      typ,
		Timeout:   timeout,
		IsVisible: true,
	}

	if timeout > 0 {
		gen := s.gen
		s.dismiss = time.AfterFunc(timeout, func() { s.fadeOut(gen) })
	}
}

// Hide starts the fade-out of the current message immediately.
func (s *Snackbar) Hide() {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()
	s.fadeOut(gen)
}

// Current returns a snapshot of the live message, if any.
func (s *Snackbar) Current() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Message{}, false
	}
	return *s.current, true
}

// Close stops all outstanding timers. No state changes after Close.
func (s *Snackbar) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopTimersLocked()
}

// Success implements the gateway Notifier for mutating-request successes.
func (s *Snackbar) Success(message string) {
	s.Show(message, TypeSuccess, DefaultTimeout)
}

// Error implements the gateway Notifier for mutating-request failures.
func (s *Snackbar) Error(message string) {
	s.Show(message, TypeError, DefaultTimeout)
}

func (s *Snackbar) fadeOut(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen || s.current == nil || !s.current.IsVisible {
		return
	}
	s.current.IsVisible = false
	s.clear = time.AfterFunc(s.grace, func() { s.clearMessage(gen) })
}

func (s *Snackbar) clearMessage(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen {
		return
	}
	s.current = nil
}

func (s *Snackbar) stopTimersLocked() {
	if s.dismiss != nil {
		s.dismiss.Stop()
		s.dismiss = nil
	}
	if s.clear != nil {
		s.clear.Stop()
		s.clear = nil
	}
}
