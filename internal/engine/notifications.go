package engine

import "fmt"

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyDanger  NotificationType = "danger"
	NotifyLevelUp NotificationType = "level_up"
)

// Notification is an advisory event for the presentation layer. Blocked
// actions (penalty, insufficient gold, already completed) surface here
// instead of as errors; the player state is returned unchanged.
type Notification struct {
	Message string
	Type    NotificationType
}

func notify(typ NotificationType, format string, args ...any) Notification {
	return Notification{Message: fmt.Sprintf(format, args...), Type: typ}
}

func penaltyBlocked() Notification {
	return notify(NotifyDanger, "The System denies you. Penalty Zone is active.")
}
