package services

import "log"

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is a user-visible message, the equivalent of the UI toast.
type Notification struct {
	Title   string
	Message string
	Variant string
}

// Notifier receives every user-visible notification the stores emit.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the process log. Headless consumers
// that want real toasts plug in their own Notifier.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	if n.Variant == VariantDestructive {
		log.Printf("[!] %s: %s", n.Title, n.Message)
		return
	}
	log.Printf("%s: %s", n.Title, n.Message)
}
