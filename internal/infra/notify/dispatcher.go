package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/usecase/shared"
)

// Dispatcher fans events out to their recipients in the background. Delivery
// failures are logged at WARN and dropped.
type Dispatcher struct {
	directory ContactDirectory
	notifier  Notifier
	timeout   time.Duration
	logger    *slog.Logger

	wg sync.WaitGroup
}

func NewDispatcher(directory ContactDirectory, notifier Notifier, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		directory: directory,
		notifier:  notifier,
		timeout:   timeout,
		logger:    logger,
	}
}

// Dispatch returns immediately. Delivery keeps running after the request context ends.
func (d *Dispatcher) Dispatch(ctx context.Context, events ...shared.Event) {
	if len(events) == 0 {
		return
	}

	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		for _, ev := range events {
			d.deliver(ctx, ev)
		}
	}()
}

// Wait blocks until in-flight deliveries finish or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev shared.Event) {
	contacts, err := d.resolve(ctx, ev.Recipient)
	if err != nil {
		d.warn(ctx, ev, err)
		return
	}

	for _, c := range contacts {
		msg := Message{
			Event:       ev.Kind,
			Party:       ev.Recipient.Role,
			RecipientID: ev.Recipient.ID,
			Contact:     c,
			EntityID:    ev.EntityID,
			Payload:     ev.Payload,
			OccurredAt:  ev.OccurredAt,
		}
		if err := d.notifier.Notify(ctx, msg); err != nil {
			d.warn(ctx, ev, err)
		}
	}
}

func (d *Dispatcher) resolve(ctx context.Context, r shared.Recipient) ([]user.ContactInfo, error) {
	if r.ID == nil {
		return d.directory.FindContactsByRole(ctx, user.Role(r.Role))
	}
	c, err := d.directory.FindContact(ctx, *r.ID)
	if err != nil {
		return nil, err
	}
	return []user.ContactInfo{*c}, nil
}

func (d *Dispatcher) warn(ctx context.Context, ev shared.Event, err error) {
	d.logger.WarnContext(ctx, "notification delivery failed",
		slog.String("party", string(ev.Recipient.Role)),
		slog.String("event", string(ev.Kind)),
		slog.String("entity_id", ev.EntityID.String()),
		slog.String("error", err.Error()),
	)
}
