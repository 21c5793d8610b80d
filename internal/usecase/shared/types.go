//go:generate mockgen -destination=../../../tests/mock/shared/shared.go -package=sharedmock marketplace-core/internal/usecase/shared SequenceAllocator,EventDispatcher

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SequenceAllocator hands out per-name counters. The first value for a name is 1
// and concurrent callers never receive the same value.
type SequenceAllocator interface {
	Next(ctx context.Context, name string) (int64, error)
}

type EventKind string

const (
	EventBookingAccepted  EventKind = "booking.accepted"
	EventBookingStarted   EventKind = "booking.started"
	EventBookingRejected  EventKind = "booking.rejected"
	EventBookingCompleted EventKind = "booking.completed"
	EventBookingCancelled EventKind = "booking.cancelled"

	EventQuotationCreated   EventKind = "quotation.created"
	EventQuotationResponded EventKind = "quotation.responded"
	EventQuotationWithdrawn EventKind = "quotation.withdrawn"
)

type PartyRole string

const (
	PartyCustomer PartyRole = "customer"
	PartyPartner  PartyRole = "partner"
	PartyAdmin    PartyRole = "admin"
)

// Recipient addresses one party. A nil ID means every user holding Role (used for admins).
type Recipient struct {
	Role PartyRole
	ID   *uuid.UUID
}

// Event is one "notify party P of event E" request.
type Event struct {
	Kind       EventKind
	Recipient  Recipient
	EntityID   uuid.UUID
	Payload    map[string]string
	OccurredAt time.Time
}

// EventDispatcher delivers events best-effort. It never blocks the caller on delivery
// and never reports delivery failures back.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events ...Event)
}
