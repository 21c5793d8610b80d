//go:generate mockgen -source=notifier.go -destination=../../../tests/mock/notify/notify.go -package=notifymock

package notify

import (
	"context"
	"log/slog"
	"time"

	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// Message is one event addressed to one resolved contact.
type Message struct {
	Event       shared.EventKind  `json:"event"`
	Party       shared.PartyRole  `json:"party"`
	RecipientID *uuid.UUID        `json:"recipient_id,omitempty"`
	Contact     user.ContactInfo  `json:"contact"`
	EntityID    uuid.UUID         `json:"entity_id"`
	Payload     map[string]string `json:"payload,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

// Notifier delivers a single message over some channel.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// ContactDirectory resolves recipients to contact details.
type ContactDirectory interface {
	FindContact(ctx context.Context, id uuid.UUID) (*user.ContactInfo, error)
	FindContactsByRole(ctx context.Context, role user.Role) ([]user.ContactInfo, error)
}

// LogNotifier writes messages to the structured log instead of sending them.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	n.logger.InfoContext(ctx, "notification",
		slog.String("event", string(msg.Event)),
		slog.String("party", string(msg.Party)),
		slog.String("email", msg.Contact.Email),
		slog.String("entity_id", msg.EntityID.String()),
		slog.Any("payload", msg.Payload),
	)
	return nil
}
