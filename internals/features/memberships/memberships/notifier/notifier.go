package notifier

import "log"

// Notifier is the hook fired after a membership is activated. It is an
// interface so the delivery channel (email/SMS/push) can change without
// touching the payment flow; activation never depends on its result.
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier logs to stdout. Stands in for the old email trigger
// that fired on membership creation.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s\n", subject, message)
	return nil
}
