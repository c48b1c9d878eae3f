// Package notify drives transient user feedback: each raised notification
// joins a visible queue ordered by raise time and is removed automatically
// after a fixed delay, independent of user action.
package notify

import (
	"sync"
	"time"

	"github.com/Alfredofh/game-collector-front/internal/shared"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3000 * time.Millisecond

// Kind classifies a notification for presentation.
type Kind int

const (
	Success Kind = iota
	Error
	Info
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notification is one entry in the visible queue.
type Notification struct {
	ID       string
	Kind     Kind
	Message  string
	RaisedAt time.Time
}

// Center owns the queue. Multiple notifications may be visible concurrently.
type Center struct {
	mu    sync.Mutex
	items []Notification
	ttl   time.Duration
	clock func() time.Time
}

// NewCenter creates a notification center. A non-positive ttl falls back to
// [DefaultTTL].
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, clock: time.Now}
}

// Push appends a notification and schedules its removal after the TTL.
func (c *Center) Push(message string, kind Kind) Notification {
	n := Notification{
		ID:       shared.GenerateID(),
		Kind:     kind,
		Message:  message,
		RaisedAt: c.clock(),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() { c.Dismiss(n.ID) })
	return n
}

// Successf raises a success notification.
func (c *Center) Successf(message string) Notification { return c.Push(message, Success) }

// Errorf raises an error notification.
func (c *Center) Errorf(message string) Notification { return c.Push(message, Error) }

// Infof raises an info notification.
func (c *Center) Infof(message string) Notification { return c.Push(message, Info) }

// Dismiss removes a notification by ID. Dismissing an unknown ID is a no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.items[:0]
	for _, n := range c.items {
		if n.ID != id {
			out = append(out, n)
		}
	}
	c.items = out
}

// Visible returns a snapshot of the queue ordered by raise time.
func (c *Center) Visible() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}
