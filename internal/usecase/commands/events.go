package commands

import (
	"time"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

func customerOf(id uuid.UUID) shared.Recipient {
	return shared.Recipient{Role: shared.PartyCustomer, ID: &id}
}

func partnerOf(id uuid.UUID) shared.Recipient {
	return shared.Recipient{Role: shared.PartyPartner, ID: &id}
}

func admins() shared.Recipient {
	return shared.Recipient{Role: shared.PartyAdmin}
}

func bookingEvent(kind shared.EventKind, to shared.Recipient, b *booking.Booking, now time.Time) shared.Event {
	payload := map[string]string{
		"booking_id":   b.ID().String(),
		"service_name": b.ServiceName(),
		"status":       b.Status().String(),
	}
	if p := b.PartnerID(); p != nil {
		payload["partner_id"] = p.String()
	}
	return shared.Event{
		Kind:       kind,
		Recipient:  to,
		EntityID:   b.ID(),
		Payload:    payload,
		OccurredAt: now,
	}
}

func recipientFor(p quotation.Party, q *quotation.Quotation) shared.Recipient {
	switch p {
	case quotation.PartyCustomer:
		return customerOf(q.UserID())
	case quotation.PartyPartner:
		return partnerOf(q.PartnerID())
	default:
		return admins()
	}
}

func trackOf(p quotation.Party, q *quotation.Quotation) quotation.Track {
	switch p {
	case quotation.PartyCustomer:
		return q.Customer()
	case quotation.PartyPartner:
		return q.Partner()
	default:
		return q.Admin()
	}
}

// quotationEvents addresses one event to each party other than actor.
func quotationEvents(kind shared.EventKind, actor quotation.Party, q *quotation.Quotation, now time.Time) []shared.Event {
	payload := map[string]string{
		"quotation_id": q.ID().String(),
		"number":       q.Number(),
		"booking_id":   q.BookingID().String(),
		"status":       q.Status().String(),
		"actor":        string(actor),
	}
	if kind == shared.EventQuotationResponded {
		payload["track_status"] = trackOf(actor, q).Status.String()
	}

	others := quotation.OtherParties(actor)
	events := make([]shared.Event, 0, len(others))
	for _, p := range others {
		events = append(events, shared.Event{
			Kind:       kind,
			Recipient:  recipientFor(p, q),
			EntityID:   q.ID(),
			Payload:    payload,
			OccurredAt: now,
		})
	}
	return events
}
