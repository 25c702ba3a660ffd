package types

import "time"

// Toast represents a transient notification message. The original alert()
// surfaces (import failures, export confirmations) are rendered as toasts.
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// NewToast builds a toast that expires after ttl
func NewToast(level ToastLevel, message string, ttl time.Duration) Toast {
	return Toast{Level: level, Message: message, Expires: time.Now().Add(ttl)}
}

// Expired reports whether the toast should no longer be shown
func (t Toast) Expired(now time.Time) bool {
	return now.After(t.Expires)
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)
