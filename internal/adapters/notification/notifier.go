// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier handles desktop notifications.
type Notifier struct {
	enabled bool
}

// New creates a new notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if n == nil || !n.enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifySyncComplete displays a notification after a sync run.
func (n *Notifier) NotifySyncComplete(changed int) error {
	message := "Content is already up to date."
	if changed > 0 {
		message = fmt.Sprintf("Pulled %d changed file(s).", changed)
	}
	return n.Notify("Content sync complete", message)
}

// NotifyPushComplete displays a notification after a push run.
func (n *Notifier) NotifyPushComplete(changed int, branch string) error {
	message := "Nothing to push."
	if changed > 0 {
		message = fmt.Sprintf("Pushed %d file(s) to origin/%s.", changed, branch)
	}
	return n.Notify("Content push complete", message)
}
