package shared

import (
	"context"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/partner"
	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Quotations() QuotationRepository
	Reads() CommandReads
	DB() DBTX
}

// CommandReads loads aggregates for the write side. Inside a transaction the
// booking and quotation rows are locked until commit.
type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	QuotationByID(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error)
	PartnerByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error)
	UserContact(ctx context.Context, id uuid.UUID) (*user.ContactInfo, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// Assign writes an accept only while the stored booking is still pending with no partner.
	Assign(ctx context.Context, b *booking.Booking) error
	// Update writes b if the stored version is the one b was loaded at.
	Update(ctx context.Context, b *booking.Booking) error
}

type QuotationRepository interface {
	Create(ctx context.Context, q *quotation.Quotation) error
	Update(ctx context.Context, q *quotation.Quotation) error
	// Delete removes the quotation only while no customer response is stored.
	Delete(ctx context.Context, id uuid.UUID) error
}
