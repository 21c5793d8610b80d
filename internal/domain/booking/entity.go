package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	serviceName string
	address     string
	scheduledAt time.Time
	status      Status
	partnerID   *uuid.UUID

	otp       *OTP
	otpActive bool

	acceptedAt         *time.Time
	startedAt          *time.Time
	completedAt        *time.Time
	completionRemark   *string
	cancellationReason *string
	cancellationTime   *time.Time
	rejectionHistory   []RejectionRecord

	createdAt time.Time
	updatedAt time.Time
	version   int32
}

func NewBooking(userID uuid.UUID, serviceName, address string, scheduledAt, now time.Time) (*Booking, error) {
	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		return nil, ErrEmptyServiceName
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if !scheduledAt.After(now) {
		return nil, ErrScheduledInPast
	}

	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		serviceName: serviceName,
		address:     address,
		scheduledAt: scheduledAt,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
	}, nil
}

// Snapshot carries every persisted field of a booking.
type Snapshot struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	ServiceName        string
	Address            string
	ScheduledAt        time.Time
	Status             Status
	PartnerID          *uuid.UUID
	OTP                *string
	OTPActive          bool
	AcceptedAt         *time.Time
	StartedAt          *time.Time
	CompletedAt        *time.Time
	CompletionRemark   *string
	CancellationReason *string
	CancellationTime   *time.Time
	RejectionHistory   []RejectionRecord
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int32
}

func Reconstruct(s Snapshot) *Booking {
	var otp *OTP
	if s.OTP != nil {
		otp = &OTP{code: *s.OTP}
	}
	history := make([]RejectionRecord, len(s.RejectionHistory))
	copy(history, s.RejectionHistory)

	return &Booking{
		id:                 s.ID,
		userID:             s.UserID,
		serviceName:        s.ServiceName,
		address:            s.Address,
		scheduledAt:        s.ScheduledAt,
		status:             s.Status,
		partnerID:          s.PartnerID,
		otp:                otp,
		otpActive:          s.OTPActive,
		acceptedAt:         s.AcceptedAt,
		startedAt:          s.StartedAt,
		completedAt:        s.CompletedAt,
		completionRemark:   s.CompletionRemark,
		cancellationReason: s.CancellationReason,
		cancellationTime:   s.CancellationTime,
		rejectionHistory:   history,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		version:            s.Version,
	}
}

func (b *Booking) Snapshot() Snapshot {
	var otp *string
	if b.otp != nil {
		code := b.otp.code
		otp = &code
	}
	return Snapshot{
		ID:                 b.id,
		UserID:             b.userID,
		ServiceName:        b.serviceName,
		Address:            b.address,
		ScheduledAt:        b.scheduledAt,
		Status:             b.status,
		PartnerID:          b.partnerID,
		OTP:                otp,
		OTPActive:          b.otpActive,
		AcceptedAt:         b.acceptedAt,
		StartedAt:          b.startedAt,
		CompletedAt:        b.completedAt,
		CompletionRemark:   b.completionRemark,
		CancellationReason: b.cancellationReason,
		CancellationTime:   b.cancellationTime,
		RejectionHistory:   b.RejectionHistory(),
		CreatedAt:          b.createdAt,
		UpdatedAt:          b.updatedAt,
		Version:            b.version,
	}
}

// Accept assigns the partner and arms a freshly generated OTP.
func (b *Booking) Accept(partnerID uuid.UUID, code OTP, now time.Time) error {
	if b.partnerID != nil {
		return ErrAlreadyAssigned
	}
	if !b.status.CanTransitionTo(StatusAccepted) {
		return ErrInvalidTransition
	}
	if code.IsZero() {
		return ErrMalformedOTP
	}

	b.status = StatusAccepted
	b.partnerID = &partnerID
	b.activateOTP(code)
	b.acceptedAt = &now
	b.touch(now)
	return nil
}

// Start marks work as begun. The OTP stays armed until completion.
func (b *Booking) Start(partnerID uuid.UUID, now time.Time) error {
	if b.status != StatusAccepted {
		return ErrInvalidTransition
	}
	if !b.isAssignedTo(partnerID) {
		return ErrNotAssigned
	}

	b.status = StatusInProgress
	b.startedAt = &now
	b.touch(now)
	return nil
}

// Reject returns the booking to the open pool and records who gave it up.
func (b *Booking) Reject(partnerID uuid.UUID, reason Reason, now time.Time) error {
	if !b.isAssignedTo(partnerID) {
		return ErrNotAssigned
	}
	if !b.status.IsActive() {
		return ErrInvalidTransition
	}

	b.rejectionHistory = append(b.rejectionHistory, RejectionRecord{
		PartnerID:  partnerID,
		Reason:     reason.String(),
		RejectedAt: now,
	})
	b.status = StatusPending
	b.partnerID = nil
	b.invalidateOTP()
	b.acceptedAt = nil
	b.startedAt = nil
	b.touch(now)
	return nil
}

// Complete checks status, assignment, OTP activity and OTP match, in that order.
func (b *Booking) Complete(partnerID uuid.UUID, submitted string, remark *string, now time.Time) error {
	if !b.status.IsActive() {
		return ErrInvalidTransition
	}
	if !b.isAssignedTo(partnerID) {
		return ErrNotAssigned
	}
	if !b.otpActive {
		return ErrOtpInactive
	}
	if !b.VerifyOTP(submitted) {
		return ErrInvalidOtp
	}

	var stored *string
	if remark != nil {
		r := strings.TrimSpace(*remark)
		if utf8.RuneCountInString(r) > MaxRemarkLength {
			return ErrRemarkTooLong
		}
		if r != "" {
			stored = &r
		}
	}

	b.status = StatusCompleted
	b.completedAt = &now
	b.completionRemark = stored
	b.invalidateOTP()
	b.touch(now)
	return nil
}

// Cancel is open to the booking's customer until CancellationWindow after creation.
func (b *Booking) Cancel(requesterID uuid.UUID, reason Reason, now time.Time) error {
	if requesterID != b.userID {
		return ErrNotCustomer
	}
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	if !b.WithinCancellationWindow(now) {
		return ErrWindowExpired
	}

	r := reason.String()
	b.status = StatusCancelled
	b.cancellationReason = &r
	b.cancellationTime = &now
	b.partnerID = nil
	b.invalidateOTP()
	b.touch(now)
	return nil
}

func (b *Booking) WithinCancellationWindow(now time.Time) bool {
	return !now.After(b.CancellationDeadline())
}

func (b *Booking) CancellationDeadline() time.Time {
	return b.createdAt.Add(CancellationWindow)
}

func (b *Booking) IsAssignedTo(partnerID uuid.UUID) bool {
	return b.isAssignedTo(partnerID)
}

func (b *Booking) isAssignedTo(partnerID uuid.UUID) bool {
	return b.partnerID != nil && *b.partnerID == partnerID
}

// touch bumps the version that the repository uses as its optimistic write guard.
func (b *Booking) touch(now time.Time) {
	b.updatedAt = now
	b.version++
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) ServiceName() string          { return b.serviceName }
func (b *Booking) Address() string              { return b.address }
func (b *Booking) ScheduledAt() time.Time       { return b.scheduledAt }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PartnerID() *uuid.UUID        { return b.partnerID }
func (b *Booking) OTP() *OTP                    { return b.otp }
func (b *Booking) OTPActive() bool              { return b.otpActive }
func (b *Booking) AcceptedAt() *time.Time       { return b.acceptedAt }
func (b *Booking) StartedAt() *time.Time        { return b.startedAt }
func (b *Booking) CompletedAt() *time.Time      { return b.completedAt }
func (b *Booking) CompletionRemark() *string    { return b.completionRemark }
func (b *Booking) CancellationReason() *string  { return b.cancellationReason }
func (b *Booking) CancellationTime() *time.Time { return b.cancellationTime }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
func (b *Booking) Version() int32               { return b.version }

func (b *Booking) RejectionHistory() []RejectionRecord {
	out := make([]RejectionRecord, len(b.rejectionHistory))
	copy(out, b.rejectionHistory)
	return out
}
