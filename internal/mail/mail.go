// Package mail sends transactional email through an outbound email API.
package mail

import "context"

type Message struct {
	To      string
	Subject string
	Text    string
}

// Mailer delivers a single message. Implementations must be safe for
// concurrent use; the dispatcher calls Send from pool workers.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
