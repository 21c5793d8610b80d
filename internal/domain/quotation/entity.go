package quotation

import (
	"strings"
	"time"
	"unicode/utf8"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/partner"

	"github.com/google/uuid"
)

const (
	MaxNotesLength  = 2000
	MaxReasonLength = 500
)

// Track is one party's approval record. ReviewerID is only set on the admin track.
type Track struct {
	Status      TrackStatus
	RespondedAt *time.Time
	Reason      *string
	ReviewerID  *uuid.UUID
}

func pendingTrack() Track {
	return Track{Status: TrackPending}
}

type Quotation struct {
	id          uuid.UUID
	number      string
	bookingID   uuid.UUID
	userID      uuid.UUID
	partnerID   uuid.UUID
	items       []LineItem
	totalAmount float64
	notes       string
	validTill   time.Time

	customer Track
	partner  Track
	admin    Track
	status   Status

	createdAt time.Time
	updatedAt time.Time
	version   int32
}

// CheckBookingEligibility reports whether partnerID may quote against b.
func CheckBookingEligibility(b *booking.Booking, partnerID uuid.UUID) error {
	if !b.IsAssignedTo(partnerID) {
		return ErrBookingNotAssigned
	}
	if !b.Status().IsActive() {
		return ErrBookingNotActive
	}
	return nil
}

type NewParams struct {
	Booking   *booking.Booking
	Partner   *partner.Partner
	Sequence  int64
	Items     []LineItem
	ValidTill time.Time
	Notes     string
	Now       time.Time
}

// ValidateDraft checks the partner-supplied part of a quotation.
func ValidateDraft(items []LineItem, validTill time.Time, notes string, now time.Time) error {
	if _, err := NewLineItems(items); err != nil {
		return err
	}
	if !validTill.After(now) {
		return ErrValidTillInPast
	}
	if utf8.RuneCountInString(strings.TrimSpace(notes)) > MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

// NewQuotation reads the partner type once. Later changes to the partner never touch the partner track.
func NewQuotation(p NewParams) (*Quotation, error) {
	if err := CheckBookingEligibility(p.Booking, p.Partner.ID()); err != nil {
		return nil, err
	}
	if err := ValidateDraft(p.Items, p.ValidTill, p.Notes, p.Now); err != nil {
		return nil, err
	}
	items, _ := NewLineItems(p.Items)

	partnerTrack := Track{Status: TrackNotRequired}
	if p.Partner.Type().RequiresApproval() {
		partnerTrack = pendingTrack()
	}

	q := &Quotation{
		id:          uuid.New(),
		number:      FormatNumber(p.Sequence),
		bookingID:   p.Booking.ID(),
		userID:      p.Booking.UserID(),
		partnerID:   p.Partner.ID(),
		items:       items,
		totalAmount: SumTotals(items),
		notes:       strings.TrimSpace(p.Notes),
		validTill:   p.ValidTill,
		customer:    pendingTrack(),
		partner:     partnerTrack,
		admin:       pendingTrack(),
		createdAt:   p.Now,
		updatedAt:   p.Now,
		version:     1,
	}
	q.recompute(p.Now)
	return q, nil
}

type Snapshot struct {
	ID          uuid.UUID
	Number      string
	BookingID   uuid.UUID
	UserID      uuid.UUID
	PartnerID   uuid.UUID
	Items       []LineItem
	TotalAmount float64
	Notes       string
	ValidTill   time.Time
	Customer    Track
	Partner     Track
	Admin       Track
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int32
}

func Reconstruct(s Snapshot) *Quotation {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	return &Quotation{
		id:          s.ID,
		number:      s.Number,
		bookingID:   s.BookingID,
		userID:      s.UserID,
		partnerID:   s.PartnerID,
		items:       items,
		totalAmount: s.TotalAmount,
		notes:       s.Notes,
		validTill:   s.ValidTill,
		customer:    s.Customer,
		partner:     s.Partner,
		admin:       s.Admin,
		status:      s.Status,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		version:     s.Version,
	}
}

func (q *Quotation) Snapshot() Snapshot {
	return Snapshot{
		ID:          q.id,
		Number:      q.number,
		BookingID:   q.bookingID,
		UserID:      q.userID,
		PartnerID:   q.partnerID,
		Items:       q.Items(),
		TotalAmount: q.totalAmount,
		Notes:       q.notes,
		ValidTill:   q.validTill,
		Customer:    q.customer,
		Partner:     q.partner,
		Admin:       q.admin,
		Status:      q.status,
		CreatedAt:   q.createdAt,
		UpdatedAt:   q.updatedAt,
		Version:     q.version,
	}
}

func (q *Quotation) IsExpired(now time.Time) bool {
	return now.After(q.validTill)
}

// StatusAt is the read-side view: expiry is derived without mutating the quotation.
func (q *Quotation) StatusAt(now time.Time) Status {
	return DeriveStatus(q.customer.Status, q.partner.Status, q.admin.Status, q.IsExpired(now))
}

// expire records the expired status. Callers persist it and then report ErrExpired.
func (q *Quotation) expire(now time.Time) error {
	if q.status != StatusExpired {
		q.status = StatusExpired
		q.touch(now)
	}
	return ErrExpired
}

func (q *Quotation) CustomerRespond(userID uuid.UUID, d Decision, reason *string, now time.Time) error {
	r, err := reasonFor(d, reason)
	if err != nil {
		return err
	}
	if userID != q.userID {
		return ErrNotCustomer
	}
	if q.IsExpired(now) {
		return q.expire(now)
	}
	if q.customer.Status != TrackPending {
		return ErrAlreadyResponded
	}

	q.customer = Track{Status: d.trackStatus(), RespondedAt: &now, Reason: r}
	q.recompute(now)
	q.touch(now)
	return nil
}

func (q *Quotation) PartnerRespond(partnerID uuid.UUID, d Decision, reason *string, now time.Time) error {
	r, err := reasonFor(d, reason)
	if err != nil {
		return err
	}
	if partnerID != q.partnerID {
		return ErrNotPartner
	}
	if q.IsExpired(now) {
		return q.expire(now)
	}
	switch q.partner.Status {
	case TrackPending:
	case TrackNotRequired:
		return ErrPartnerApprovalNotNeeded
	default:
		return ErrAlreadyResponded
	}

	q.partner = Track{Status: d.trackStatus(), RespondedAt: &now, Reason: r}
	q.recompute(now)
	q.touch(now)
	return nil
}

// AdminRespond can reject at any point but accepts only once the partner track is settled.
func (q *Quotation) AdminRespond(adminID uuid.UUID, d Decision, reason *string, now time.Time) error {
	r, err := reasonFor(d, reason)
	if err != nil {
		return err
	}
	if q.IsExpired(now) {
		return q.expire(now)
	}
	if q.admin.Status != TrackPending {
		return ErrAlreadyReviewed
	}
	if d == DecisionAccept {
		switch q.partner.Status {
		case TrackPending:
			return ErrPartnerApprovalPending
		case TrackRejected:
			return ErrPartnerRejected
		}
	}

	reviewer := adminID
	q.admin = Track{Status: d.trackStatus(), RespondedAt: &now, Reason: r, ReviewerID: &reviewer}
	q.recompute(now)
	q.touch(now)
	return nil
}

// CheckWithdrawable allows the quoting partner to delete the quotation until the customer answers.
func (q *Quotation) CheckWithdrawable(partnerID uuid.UUID) error {
	if partnerID != q.partnerID {
		return ErrNotPartner
	}
	if q.customer.Status != TrackPending {
		return ErrCustomerAlreadyResponded
	}
	return nil
}

// OtherParties lists who must hear about a change on p's track.
func OtherParties(p Party) []Party {
	switch p {
	case PartyCustomer:
		return []Party{PartyPartner, PartyAdmin}
	case PartyPartner:
		return []Party{PartyCustomer, PartyAdmin}
	default:
		return []Party{PartyCustomer, PartyPartner}
	}
}

func reasonFor(d Decision, reason *string) (*string, error) {
	switch d {
	case DecisionAccept:
		return nil, nil
	case DecisionReject:
		// A blank reason is stored as no reason.
		if reason == nil || strings.TrimSpace(*reason) == "" {
			return nil, nil
		}
		r := strings.TrimSpace(*reason)
		if utf8.RuneCountInString(r) > MaxReasonLength {
			return nil, ErrReasonTooLong
		}
		return &r, nil
	default:
		return nil, ErrInvalidDecision
	}
}

func (q *Quotation) recompute(now time.Time) {
	q.status = DeriveStatus(q.customer.Status, q.partner.Status, q.admin.Status, q.IsExpired(now))
}

func (q *Quotation) touch(now time.Time) {
	q.updatedAt = now
	q.version++
}

func (q *Quotation) ID() uuid.UUID        { return q.id }
func (q *Quotation) Number() string       { return q.number }
func (q *Quotation) BookingID() uuid.UUID { return q.bookingID }
func (q *Quotation) UserID() uuid.UUID    { return q.userID }
func (q *Quotation) PartnerID() uuid.UUID { return q.partnerID }
func (q *Quotation) TotalAmount() float64 { return q.totalAmount }
func (q *Quotation) Notes() string        { return q.notes }
func (q *Quotation) ValidTill() time.Time { return q.validTill }
func (q *Quotation) Customer() Track      { return q.customer }
func (q *Quotation) Partner() Track       { return q.partner }
func (q *Quotation) Admin() Track         { return q.admin }
func (q *Quotation) Status() Status       { return q.status }
func (q *Quotation) CreatedAt() time.Time { return q.createdAt }
func (q *Quotation) UpdatedAt() time.Time { return q.updatedAt }
func (q *Quotation) Version() int32       { return q.version }

func (q *Quotation) Items() []LineItem {
	out := make([]LineItem, len(q.items))
	copy(out, q.items)
	return out
}
