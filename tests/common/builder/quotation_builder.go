//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/partner"
	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/domain/user"

	"github.com/google/uuid"
)

type QuotationBuilder struct {
	CustomerID  uuid.UUID
	PartnerID   uuid.UUID
	PartnerType partner.Type
	Sequence    int64
	Items       []quotation.LineItem
	ValidTill   time.Time
	Notes       string
	Now         time.Time
}

func NewQuotationBuilder() *QuotationBuilder {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &QuotationBuilder{
		CustomerID:  uuid.New(),
		PartnerID:   uuid.New(),
		PartnerType: partner.TypeIndividual,
		Sequence:    42,
		Items: []quotation.LineItem{
			{Description: "Compressor gas refill", Quantity: 1, UnitPrice: 1200, Total: 1200},
			{Description: "Labour (hours)", Quantity: 2.5, UnitPrice: 300, Total: 750},
		},
		ValidTill: now.Add(72 * time.Hour),
		Notes:     "Parts sourced locally",
		Now:       now,
	}
}

func (q *QuotationBuilder) With(mutate func(*QuotationBuilder)) *QuotationBuilder {
	mutate(q)
	return q
}

// Build methods
func (q *QuotationBuilder) BuildBooking() (*booking.Booking, error) {
	return NewBookingBuilder().
		WithUserID(q.CustomerID).
		WithNow(q.Now.Add(-time.Hour)).
		BuildAccepted(q.PartnerID, "246810")
}

func (q *QuotationBuilder) BuildPartner() *partner.Partner {
	return partner.Reconstruct(q.PartnerID, q.PartnerType, user.ContactInfo{
		Name:  "Ravi Fixit",
		Email: "ravi@example.com",
	})
}

func (q *QuotationBuilder) BuildDomain() (*quotation.Quotation, error) {
	b, err := q.BuildBooking()
	if err != nil {
		return nil, err
	}
	return quotation.NewQuotation(quotation.NewParams{
		Booking:   b,
		Partner:   q.BuildPartner(),
		Sequence:  q.Sequence,
		Items:     q.Items,
		ValidTill: q.ValidTill,
		Notes:     q.Notes,
		Now:       q.Now,
	})
}

// Fluent builder methods
func (q *QuotationBuilder) AsFranchise() *QuotationBuilder {
	q.PartnerType = partner.TypeFranchise
	return q
}

func (q *QuotationBuilder) WithItems(items ...quotation.LineItem) *QuotationBuilder {
	q.Items = items
	return q
}

func (q *QuotationBuilder) WithValidTill(t time.Time) *QuotationBuilder {
	q.ValidTill = t
	return q
}
