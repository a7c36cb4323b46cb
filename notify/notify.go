// Package notify is the fire-and-forget notification surface. The pipeline
// decides what message to raise and when; how it is presented is up to the
// Notifier implementation, which keeps the core logic testable without a UI.
package notify

import "log"

// Severity of a notification.
type Severity string

const (
	Info  Severity = "info"
	Error Severity = "error"
)

// Notification is a one-way outbound message to the user.
type Notification struct {
	Severity Severity
	Title    string
	Body     string
	// SearchID correlates the notification with the search transaction that
	// raised it.
	SearchID string
}

// Notifier presents notifications. Implementations must not block the caller.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the process log, one line each.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	log.Printf("[%s] %s: %s (search %s)", n.Severity, n.Title, n.Body, n.SearchID)
}

// Recorder captures notifications in order. Test double.
type Recorder struct {
	Notifications []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.Notifications = append(r.Notifications, n)
}
