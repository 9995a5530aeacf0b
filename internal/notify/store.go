// Package notify implements the in-process notification store: an ephemeral
// toast list and a bounded history, mutated only through the store's own
// methods and broadcast to subscribers on every change.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"dost/shared/constant"
	"dost/shared/timezone"
)

const (
	TypeSuccess = "success"
	TypeError   = "error"
	TypeInfo    = "info"
	TypeWarning = "warning"
)

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	IsRead    bool   `json:"is_read"`
}

type Store struct {
	mu      sync.Mutex
	toasts  []Notification
	history []Notification
	timers  map[string]*time.Timer

	ttl   time.Duration
	limit int

	subs    map[int]func()
	nextSub int
}

func NewStore(toastTTL time.Duration, historyLimit int) *Store {
	return &Store{
		timers: map[string]*time.Timer{},
		ttl:    toastTTL,
		limit:  historyLimit,
		subs:   map[int]func(){},
	}
}

// Add creates a notification, pushes it onto the toast list and the head of
// the history, and schedules the toast's expiry. The history entry outlives
// the toast.
func (s *Store) Add(title, message, notificationType string) Notification {
	notification := Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Timestamp: timezone.Format(timezone.Now(), constant.DateFormat),
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, notification)
	s.history = append([]Notification{notification}, s.history...)

	if len(s.history) > s.limit {
		s.history = s.history[:s.limit]
	}

	if s.ttl > 0 {
		s.timers[notification.ID] = time.AfterFunc(s.ttl, func() {
			s.Dismiss(notification.ID)
		})
	}
	s.mu.Unlock()

	s.broadcast()

	return notification
}

// Dismiss removes a toast. The matching history entry is untouched.
func (s *Store) Dismiss(id string) {
	s.mu.Lock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	kept := s.toasts[:0]
	for _, toast := range s.toasts {
		if toast.ID != id {
			kept = append(kept, toast)
		}
	}
	s.toasts = kept

	s.mu.Unlock()

	s.broadcast()
}

// MarkRead flips a history entry to read.
func (s *Store) MarkRead(id string) {
	s.mu.Lock()

	for i := range s.history {
		if s.history[i].ID == id {
			s.history[i].IsRead = true

			break
		}
	}

	s.mu.Unlock()

	s.broadcast()
}

// MarkAllRead flips every history entry to read.
func (s *Store) MarkAllRead() {
	s.mu.Lock()

	for i := range s.history {
		s.history[i].IsRead = true
	}

	s.mu.Unlock()

	s.broadcast()
}

// ClearHistory empties the history. Active toasts keep running.
func (s *Store) ClearHistory() {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()

	s.broadcast()
}

func (s *Store) Toasts() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.toasts))
	copy(out, s.toasts)

	return out
}

func (s *Store) History() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.history))
	copy(out, s.history)

	return out
}

func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, entry := range s.history {
		if !entry.IsRead {
			count++
		}
	}

	return count
}

// Subscribe registers a callback invoked after every store change and returns
// the matching unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) broadcast() {
	s.mu.Lock()
	listeners := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
