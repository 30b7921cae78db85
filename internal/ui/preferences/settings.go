package preferences

// Notification permission values stored in Settings.Notifications.
const (
	NotificationsGranted      = "granted"
	NotificationsDenied       = "denied"
	NotificationsUndetermined = ""
)

// Settings defines editable user preferences.
type Settings struct {
	ChimeEnabled   bool
	StartMinimized bool
	OpenDetached   bool

	// Notifications is the user's answer to the notification prompt.
	Notifications string
}

// DefaultSettings returns default settings for ZenFocus.
func DefaultSettings() Settings {
	return Settings{
		ChimeEnabled:   true,
		StartMinimized: false,
		OpenDetached:   false,
		Notifications:  NotificationsUndetermined,
	}
}

// NotificationsAllowed reports whether system notifications were granted.
func (settings Settings) NotificationsAllowed() bool {
	return settings.Notifications == NotificationsGranted
}
