//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/partner"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/pkg/clock"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/shared"
	"marketplace-core/tests/common/builder"
	sharedmock "marketplace-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockEvents *sharedmock.MockEventDispatcher
	store      *memStore
	clock      *clock.MockClock
	uc         commands.BookingCommands

	ctx        context.Context
	customerID uuid.UUID
	partnerID  uuid.UUID
	bookingID  uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockEvents = sharedmock.NewMockEventDispatcher(s.mockCtrl)
	s.store = newMemStore()
	s.ctx = context.Background()

	b, err := builder.NewBookingBuilder().BuildDomain()
	s.Require().NoError(err)
	s.customerID = b.UserID()
	s.bookingID = b.ID()
	s.store.putBooking(b)

	s.partnerID = uuid.New()
	s.store.putPartner(partner.Reconstruct(s.partnerID, partner.TypeIndividual, user.ContactInfo{Name: "Ravi Fixit"}))

	s.clock = clock.NewMockClock(b.CreatedAt().Add(5 * time.Minute))
	s.uc = commands.NewBookingUseCase(s.store, s.clock, fixedOTP{code: "031337"}, s.mockEvents)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// expectEvents captures every dispatched event for later inspection.
func (s *BookingCommandsTestSuite) expectEvents() *[]shared.Event {
	var got []shared.Event
	s.mockEvents.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, events ...shared.Event) {
			got = append(got, events...)
		})
	return &got
}

func (s *BookingCommandsTestSuite) accept() {
	s.expectEvents()
	_, err := s.uc.AcceptBooking(s.ctx, s.bookingID, s.partnerID)
	s.Require().NoError(err)
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("persists a pending booking", func() {
		req := commands.CreateBookingRequest{
			ServiceName: "Deep cleaning",
			Address:     "4 Lake View",
			ScheduledAt: s.clock.Now().Add(48 * time.Hour),
		}
		b, err := s.uc.CreateBooking(s.ctx, req, s.customerID)
		s.Require().NoError(err)

		stored := s.store.storedBooking(b.ID())
		s.Equal(booking.StatusPending, stored.Status)
		s.Equal(int32(1), stored.Version)
		s.Equal(s.customerID, stored.UserID)
	})

	s.Run("validation failure writes nothing", func() {
		commits := s.store.commits
		_, err := s.uc.CreateBooking(s.ctx, commands.CreateBookingRequest{
			ServiceName: " ",
			Address:     "4 Lake View",
			ScheduledAt: s.clock.Now().Add(time.Hour),
		}, s.customerID)
		s.ErrorIs(err, booking.ErrEmptyServiceName)
		s.ErrorIs(err, errs.ErrValidation)
		s.Equal(commits, s.store.commits)
	})
}

func (s *BookingCommandsTestSuite) TestAcceptBooking() {
	s.Run("assigns the partner and notifies the customer", func() {
		got := s.expectEvents()

		b, err := s.uc.AcceptBooking(s.ctx, s.bookingID, s.partnerID)
		s.Require().NoError(err)
		s.Equal(booking.StatusAccepted, b.Status())

		stored := s.store.storedBooking(s.bookingID)
		s.Require().NotNil(stored.PartnerID)
		s.Equal(s.partnerID, *stored.PartnerID)
		s.Require().NotNil(stored.OTP)
		s.Equal("031337", *stored.OTP)
		s.True(stored.OTPActive)

		s.Require().Len(*got, 1)
		ev := (*got)[0]
		s.Equal(shared.EventBookingAccepted, ev.Kind)
		s.Equal(shared.PartyCustomer, ev.Recipient.Role)
		s.Equal(s.customerID, *ev.Recipient.ID)
		s.Equal(s.partnerID.String(), ev.Payload["partner_id"])
	})

	s.Run("second partner is refused", func() {
		other := uuid.New()
		s.store.putPartner(partner.Reconstruct(other, partner.TypeIndividual, user.ContactInfo{Name: "Other"}))

		_, err := s.uc.AcceptBooking(s.ctx, s.bookingID, other)
		s.ErrorIs(err, booking.ErrAlreadyAssigned)
		s.ErrorIs(err, errs.ErrAlreadyAssigned)
		s.Equal(s.partnerID, *s.store.storedBooking(s.bookingID).PartnerID)
	})
}

func (s *BookingCommandsTestSuite) TestAcceptBooking_NotFound() {
	s.Run("unknown partner", func() {
		_, err := s.uc.AcceptBooking(s.ctx, s.bookingID, uuid.New())
		s.ErrorIs(err, partner.ErrNotFound)
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("unknown booking", func() {
		_, err := s.uc.AcceptBooking(s.ctx, uuid.New(), s.partnerID)
		s.ErrorIs(err, booking.ErrNotFound)
		s.ErrorIs(err, errs.ErrNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestAcceptBooking_Concurrent() {
	const partners = 8
	ids := make([]uuid.UUID, partners)
	for i := range ids {
		ids[i] = uuid.New()
		s.store.putPartner(partner.Reconstruct(ids[i], partner.TypeIndividual, user.ContactInfo{Name: "P"}))
	}
	s.mockEvents.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(1)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  int
		assigned int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(partnerID uuid.UUID) {
			defer wg.Done()
			_, err := s.uc.AcceptBooking(s.ctx, s.bookingID, partnerID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errs.Is(err, errs.ErrAlreadyAssigned):
				assigned++
			}
		}(id)
	}
	wg.Wait()

	s.Equal(1, winners)
	s.Equal(partners-1, assigned)
}

func (s *BookingCommandsTestSuite) TestCompleteBooking() {
	s.accept()
	s.clock.Add(2 * time.Hour)

	s.Run("wrong code leaves the booking untouched", func() {
		before := s.store.storedBooking(s.bookingID)
		_, err := s.uc.CompleteBooking(s.ctx, s.bookingID, s.partnerID, commands.CompleteBookingRequest{OTP: "000000"})
		s.ErrorIs(err, booking.ErrInvalidOtp)
		s.Equal(before.Version, s.store.storedBooking(s.bookingID).Version)
	})

	s.Run("matching code completes and consumes the OTP", func() {
		got := s.expectEvents()
		remark := "replaced filter"
		b, err := s.uc.CompleteBooking(s.ctx, s.bookingID, s.partnerID, commands.CompleteBookingRequest{OTP: "031337", Remark: &remark})
		s.Require().NoError(err)
		s.Equal(booking.StatusCompleted, b.Status())

		stored := s.store.storedBooking(s.bookingID)
		s.Nil(stored.OTP)
		s.False(stored.OTPActive)
		s.Require().NotNil(stored.CompletionRemark)
		s.Equal(remark, *stored.CompletionRemark)
		s.Require().Len(*got, 1)
		s.Equal(shared.EventBookingCompleted, (*got)[0].Kind)
	})

	s.Run("second completion is an invalid transition", func() {
		_, err := s.uc.CompleteBooking(s.ctx, s.bookingID, s.partnerID, commands.CompleteBookingRequest{OTP: "031337"})
		s.ErrorIs(err, errs.ErrInvalidState)
	})
}

func (s *BookingCommandsTestSuite) TestStartAndRejectBooking() {
	s.accept()

	s.expectEvents()
	_, err := s.uc.StartBooking(s.ctx, s.bookingID, s.partnerID)
	s.Require().NoError(err)

	got := s.expectEvents()
	b, err := s.uc.RejectBooking(s.ctx, s.bookingID, s.partnerID, "  customer unreachable ")
	s.Require().NoError(err)
	s.Equal(booking.StatusPending, b.Status())

	stored := s.store.storedBooking(s.bookingID)
	s.Nil(stored.PartnerID)
	s.Nil(stored.StartedAt)
	s.Require().Len(stored.RejectionHistory, 1)
	s.Equal(s.partnerID, stored.RejectionHistory[0].PartnerID)
	s.Equal("customer unreachable", stored.RejectionHistory[0].Reason)

	s.Require().Len(*got, 1)
	s.Equal(shared.EventBookingRejected, (*got)[0].Kind)
	s.Equal("customer unreachable", (*got)[0].Payload["reason"])
	s.Equal(s.partnerID.String(), (*got)[0].Payload["partner_id"])
}

func (s *BookingCommandsTestSuite) TestRejectBooking_Guards() {
	s.Run("empty reason", func() {
		_, err := s.uc.RejectBooking(s.ctx, s.bookingID, s.partnerID, "   ")
		s.ErrorIs(err, booking.ErrReasonRequired)
	})

	s.Run("partner not assigned", func() {
		_, err := s.uc.RejectBooking(s.ctx, s.bookingID, s.partnerID, "busy")
		s.ErrorIs(err, booking.ErrNotAssigned)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	s.Run("pending booking cancels without notifications", func() {
		s.mockEvents.EXPECT().Dispatch(gomock.Any())

		b, err := s.uc.CancelBooking(s.ctx, s.bookingID, s.customerID, "plans changed")
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, b.Status())
		s.Require().NotNil(s.store.storedBooking(s.bookingID).CancellationReason)
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking_AssignedPartnerIsNotified() {
	s.accept()
	got := s.expectEvents()

	_, err := s.uc.CancelBooking(s.ctx, s.bookingID, s.customerID, "found someone closer")
	s.Require().NoError(err)

	stored := s.store.storedBooking(s.bookingID)
	s.Nil(stored.PartnerID)
	s.Nil(stored.OTP)

	s.Require().Len(*got, 1)
	ev := (*got)[0]
	s.Equal(shared.EventBookingCancelled, ev.Kind)
	s.Equal(shared.PartyPartner, ev.Recipient.Role)
	s.Equal(s.partnerID, *ev.Recipient.ID)
	s.Equal("found someone closer", ev.Payload["reason"])
}

func (s *BookingCommandsTestSuite) TestCancelBooking_Guards() {
	s.Run("someone other than the customer", func() {
		_, err := s.uc.CancelBooking(s.ctx, s.bookingID, uuid.New(), "nope")
		s.ErrorIs(err, booking.ErrNotCustomer)
	})

	s.Run("window closed", func() {
		s.clock.Set(s.store.storedBooking(s.bookingID).CreatedAt.Add(booking.CancellationWindow + time.Second))
		_, err := s.uc.CancelBooking(s.ctx, s.bookingID, s.customerID, "too late")
		s.ErrorIs(err, booking.ErrWindowExpired)
		s.ErrorIs(err, errs.ErrWindowExpired)
		s.Equal(booking.StatusPending, s.store.storedBooking(s.bookingID).Status)
	})
}
