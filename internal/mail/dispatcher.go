package mail

import (
	"context"
	"log/slog"
	"time"

	"github.com/gammazero/workerpool"
)

const sendTimeout = 60 * time.Second

// Dispatcher queues messages onto a worker pool so email delivery never sits
// on a request path. Failures are logged; callers treat enqueue as
// fire-and-forget.
type Dispatcher struct {
	mailer Mailer
	pool   *workerpool.WorkerPool
	logger *slog.Logger
}

func NewDispatcher(mailer Mailer, workers int, logger *slog.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		mailer: mailer,
		pool:   workerpool.New(workers),
		logger: logger,
	}
}

func (d *Dispatcher) Enqueue(msg Message) {
	d.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := d.mailer.Send(ctx, msg); err != nil {
			d.logger.Error("email delivery failed", "to", msg.To, "subject", msg.Subject, "error", err)
			return
		}
		d.logger.Debug("email delivered", "to", msg.To, "subject", msg.Subject)
	})
}

// Stop drains queued sends and shuts the pool down.
func (d *Dispatcher) Stop() {
	d.pool.StopWait()
}
