// Package alert delivers the completion cue: a synthesized chime and a
// system notification when the user allowed it.
package alert

//go:generate mockgen -source=alert.go -destination=mock_alert.go -package=alert

import "context"

// Permission is the user's answer to the system notification prompt.
type Permission string

const (
	PermissionGranted      Permission = "granted"
	PermissionDenied       Permission = "denied"
	PermissionUndetermined Permission = "undetermined"
)

// ParsePermission maps a stored value to a Permission. Unknown values are undetermined.
func ParsePermission(value string) Permission {
	switch Permission(value) {
	case PermissionGranted, PermissionDenied:
		return Permission(value)
	default:
		return PermissionUndetermined
	}
}

// Message is the text of the system notification.
type Message struct {
	Title string
	Body  string
}

// Tone plays the audible cue.
type Tone interface {
	Play() error
}

// Notifier posts a system-level notification.
type Notifier interface {
	Notify(title, body string) error
}

// PermissionProvider answers and asks for notification permission.
type PermissionProvider interface {
	Query() Permission
	Request(ctx context.Context) (Permission, error)
}
