package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Type is the severity of a notification.
type Type string

const (
	TypeError   Type = "error"
	TypeSuccess Type = "success"
)

// Event is a user-facing outcome message.
type Event struct {
	Type    Type      `json:"type"`
	Source  string    `json:"source"`
	Name    string    `json:"name"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Notifier receives outcome messages.
type Notifier interface {
	Notify(e Event)
}

// ZapNotifier writes notifications to a zap logger.
type ZapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier creates a Notifier logging through logger.
func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Notify(e Event) {
	fields := []zap.Field{
		zap.String("source", e.Source),
		zap.String("name", e.Name),
	}
	if e.Type == TypeError {
		n.logger.Error(e.Message, fields...)
		return
	}
	n.logger.Info(e.Message, fields...)
}

// Feed keeps the most recent notifications in memory.
type Feed struct {
	mu     sync.Mutex
	size   int
	events []Event
}

// NewFeed creates a Feed holding at most size events.
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 100
	}
	return &Feed{size: size}
}

func (f *Feed) Notify(e Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	if over := len(f.events) - f.size; over > 0 {
		f.events = append(f.events[:0:0], f.events[over:]...)
	}
}

// Events returns a copy of the held events, oldest first.
func (f *Feed) Events() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.events))
	copy(out, f.events)
	return out
}

// Fanout forwards every notification to each of its notifiers.
type Fanout []Notifier

func (f Fanout) Notify(e Event) {
	for _, n := range f {
		n.Notify(e)
	}
}
