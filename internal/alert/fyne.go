package alert

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// FyneNotifier posts notifications through the fyne application.
type FyneNotifier struct {
	app fyne.App
}

func NewFyneNotifier(app fyne.App) *FyneNotifier {
	return &FyneNotifier{app: app}
}

func (notifier *FyneNotifier) Notify(title, body string) error {
	if notifier.app == nil {
		return errors.New("notify: no application")
	}
	notification := fyne.NewNotification(title, body)
	fyne.Do(func() {
		notifier.app.SendNotification(notification)
	})
	return nil
}

// PermissionStore persists the user's notification answer.
type PermissionStore interface {
	LoadNotificationPermission() (string, error)
	SaveNotificationPermission(value string) error
}

// DialogPermission asks the user with a confirm dialog and remembers the answer.
type DialogPermission struct {
	store  PermissionStore
	parent fyne.Window
}

func NewDialogPermission(store PermissionStore, parent fyne.Window) *DialogPermission {
	return &DialogPermission{store: store, parent: parent}
}

func (provider *DialogPermission) Query() Permission {
	value, err := provider.store.LoadNotificationPermission()
	if err != nil {
		log.Printf("alert: failed to load notification permission: %v", err)
		return PermissionUndetermined
	}
	return ParsePermission(value)
}

func (provider *DialogPermission) Request(ctx context.Context) (Permission, error) {
	if provider.parent == nil {
		return PermissionUndetermined, errors.New("request permission: no parent window")
	}

	answers := make(chan bool, 1)
	fyne.Do(func() {
		dialog.ShowConfirm(
			"Notifications",
			"Show a system notification when a focus session ends?",
			func(allowed bool) { answers <- allowed },
			provider.parent,
		)
	})

	select {
	case <-ctx.Done():
		return PermissionUndetermined, ctx.Err()
	case allowed := <-answers:
		permission := PermissionDenied
		if allowed {
			permission = PermissionGranted
		}
		if err := provider.store.SaveNotificationPermission(string(permission)); err != nil {
			return permission, fmt.Errorf("save notification permission: %w", err)
		}
		return permission, nil
	}
}
