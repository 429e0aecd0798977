// Package notify carries the short user-facing messages raised after an
// action completes or fails.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Notification variants
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is one user-visible message
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// IsError reports whether the notification describes a failure
func (n Notification) IsError() bool {
	return n.Variant == VariantDestructive
}

// Success builds a default-variant notification
func Success(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDefault}
}

// Failure builds a destructive notification titled "Error"
func Failure(description string) Notification {
	return Notification{Title: "Error", Description: description, Variant: VariantDestructive}
}

// Notifier delivers notifications to the user
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notification)

// Notify calls f(n)
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// logNotifier writes notifications to the structured log
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs every notification
func NewLogNotifier(logger *slog.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (l *logNotifier) Notify(n Notification) {
	level := slog.LevelInfo
	if n.IsError() {
		level = slog.LevelWarn
	}
	l.logger.Log(context.Background(), level, "notification",
		slog.String("title", n.Title),
		slog.String("description", n.Description),
		slog.String("variant", n.Variant),
	)
}

// Recorder keeps every notification it receives
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// Notify records n
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Last returns the most recent notification
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Multi fans a notification out to several notifiers
func Multi(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(n Notification) {
		for _, nt := range notifiers {
			if nt != nil {
				nt.Notify(n)
			}
		}
	})
}
