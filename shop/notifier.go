package shop

import "log"

// Notifier receives the user-facing notifications the storefront
// raises: transient errors, confirmations, sync warnings. UIs plug in
// their own; the default writes to the process log.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier reports through the standard logger.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Printf("✅ %s", msg) }
func (LogNotifier) Error(msg string)   { log.Printf("❌ %s", msg) }
