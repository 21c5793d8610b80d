//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/pkg/clock"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/ptr"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/shared"
	"marketplace-core/tests/common/builder"
	sharedmock "marketplace-core/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuotationCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockEvents *sharedmock.MockEventDispatcher
	mockSeq    *sharedmock.MockSequenceAllocator
	store      *memStore
	clock      *clock.MockClock
	uc         commands.QuotationCommands

	ctx     context.Context
	qb      *builder.QuotationBuilder
	booking *booking.Booking
}

func (s *QuotationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockEvents = sharedmock.NewMockEventDispatcher(s.mockCtrl)
	s.mockSeq = sharedmock.NewMockSequenceAllocator(s.mockCtrl)
	s.store = newMemStore()
	s.ctx = context.Background()

	s.qb = builder.NewQuotationBuilder()
	b, err := s.qb.BuildBooking()
	s.Require().NoError(err)
	s.booking = b
	s.store.putBooking(b)
	s.store.putPartner(s.qb.BuildPartner())

	s.clock = clock.NewMockClock(s.qb.Now)
	s.uc = commands.NewQuotationUseCase(s.store, s.clock, s.mockSeq, s.mockEvents)
}

func (s *QuotationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuotationCommandsSuite(t *testing.T) {
	suite.Run(t, new(QuotationCommandsTestSuite))
}

func (s *QuotationCommandsTestSuite) expectEvents() *[]shared.Event {
	var got []shared.Event
	s.mockEvents.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, events ...shared.Event) {
			got = append(got, events...)
		})
	return &got
}

func (s *QuotationCommandsTestSuite) createRequest() commands.CreateQuotationRequest {
	return commands.CreateQuotationRequest{
		BookingID: s.booking.ID(),
		Items:     s.qb.Items,
		ValidTill: s.qb.ValidTill,
		Notes:     s.qb.Notes,
	}
}

// seed stores a quotation built from the suite's builder.
func (s *QuotationCommandsTestSuite) seed() *quotation.Quotation {
	q, err := s.qb.BuildDomain()
	s.Require().NoError(err)
	s.store.putQuotation(q)
	return q
}

func recipients(events []shared.Event) []shared.PartyRole {
	out := make([]shared.PartyRole, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Recipient.Role)
	}
	return out
}

func (s *QuotationCommandsTestSuite) TestCreateQuotation() {
	s.mockSeq.EXPECT().Next(gomock.Any(), quotation.SequenceName).Return(int64(7), nil)
	got := s.expectEvents()

	q, err := s.uc.CreateQuotation(s.ctx, s.createRequest(), s.qb.PartnerID)
	s.Require().NoError(err)
	s.Equal("QT000007", q.Number())
	s.Equal(quotation.StatusPending, q.Status())
	s.Equal(quotation.TrackNotRequired, q.Partner().Status)
	s.InDelta(1950.0, q.TotalAmount(), 0.001)

	stored, ok := s.store.storedQuotation(q.ID())
	s.Require().True(ok)
	s.Equal(s.booking.UserID(), stored.UserID)

	s.Equal([]shared.PartyRole{shared.PartyCustomer, shared.PartyAdmin}, recipients(*got))
	s.Equal(shared.EventQuotationCreated, (*got)[0].Kind)
	s.Equal("QT000007", (*got)[0].Payload["number"])
	s.Nil((*got)[1].Recipient.ID)
}

func (s *QuotationCommandsTestSuite) TestCreateQuotation_NoNumberIssuedOnRejection() {
	type testCase struct {
		name   string
		mutate func(req *commands.CreateQuotationRequest, partnerID *uuid.UUID)
		errIs  error
	}

	cases := []testCase{
		{
			name: "no line items",
			mutate: func(req *commands.CreateQuotationRequest, _ *uuid.UUID) {
				req.Items = nil
			},
			errIs: quotation.ErrNoItems,
		},
		{
			name: "total mismatch",
			mutate: func(req *commands.CreateQuotationRequest, _ *uuid.UUID) {
				req.Items = []quotation.LineItem{{Description: "Pump", Quantity: 2, UnitPrice: 100, Total: 150}}
			},
			errIs: quotation.ErrTotalMismatch,
		},
		{
			name: "valid till in the past",
			mutate: func(req *commands.CreateQuotationRequest, _ *uuid.UUID) {
				req.ValidTill = s.qb.Now.Add(-time.Minute)
			},
			errIs: quotation.ErrValidTillInPast,
		},
		{
			name: "unknown booking",
			mutate: func(req *commands.CreateQuotationRequest, _ *uuid.UUID) {
				req.BookingID = uuid.New()
			},
			errIs: booking.ErrNotFound,
		},
		{
			name: "partner not assigned to booking",
			mutate: func(_ *commands.CreateQuotationRequest, partnerID *uuid.UUID) {
				*partnerID = uuid.New()
			},
			errIs: quotation.ErrBookingNotAssigned,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := s.createRequest()
			partnerID := s.qb.PartnerID
			tc.mutate(&req, &partnerID)

			_, err := s.uc.CreateQuotation(s.ctx, req, partnerID)
			s.ErrorIs(err, tc.errIs)
		})
	}
	s.Empty(s.store.quotations)
}

func (s *QuotationCommandsTestSuite) TestCreateQuotation_SequenceFailure() {
	s.mockSeq.EXPECT().Next(gomock.Any(), quotation.SequenceName).Return(int64(0), errors.New("redis: connection refused"))

	_, err := s.uc.CreateQuotation(s.ctx, s.createRequest(), s.qb.PartnerID)
	s.Require().Error(err)
	s.Contains(err.Error(), "allocate quotation number")
	s.Empty(s.store.quotations)
}

func (s *QuotationCommandsTestSuite) TestCreateQuotation_NumberDrawnOutsideTransaction() {
	s.mockSeq.EXPECT().Next(gomock.Any(), quotation.SequenceName).
		DoAndReturn(func(context.Context, string) (int64, error) {
			s.False(s.store.inTx.Load(), "number drawn while a transaction is open")
			return 3, nil
		})
	s.expectEvents()

	q, err := s.uc.CreateQuotation(s.ctx, s.createRequest(), s.qb.PartnerID)
	s.Require().NoError(err)
	s.Equal("QT000003", q.Number())
	s.Equal(1, s.store.commits)
}

func (s *QuotationCommandsTestSuite) TestCreateQuotation_RecheckedInsideTransaction() {
	// The booking is cancelled after the pre-check but before the transaction opens.
	s.mockSeq.EXPECT().Next(gomock.Any(), quotation.SequenceName).
		DoAndReturn(func(context.Context, string) (int64, error) {
			s.store.updateBooking(s.booking.ID(), func(snap *booking.Snapshot) {
				snap.Status = booking.StatusCancelled
			})
			return 4, nil
		})

	_, err := s.uc.CreateQuotation(s.ctx, s.createRequest(), s.qb.PartnerID)
	s.ErrorIs(err, quotation.ErrBookingNotActive)
	s.Empty(s.store.quotations)
	s.Zero(s.store.commits)
}

func (s *QuotationCommandsTestSuite) TestCustomerRespond() {
	q := s.seed()
	got := s.expectEvents()

	updated, err := s.uc.CustomerRespond(s.ctx, q.ID(), s.qb.CustomerID, commands.RespondRequest{Decision: "accept"})
	s.Require().NoError(err)
	s.Equal(quotation.StatusCustomerAcceptedAdminPending, updated.Status())

	stored, _ := s.store.storedQuotation(q.ID())
	s.Equal(quotation.TrackAccepted, stored.Customer.Status)
	s.Equal(int32(2), stored.Version)

	s.Equal([]shared.PartyRole{shared.PartyPartner, shared.PartyAdmin}, recipients(*got))
	s.Equal("accepted", (*got)[0].Payload["track_status"])
	s.Equal("customer", (*got)[0].Payload["actor"])
}

func (s *QuotationCommandsTestSuite) TestRespond_ValidationBeforeLoad() {
	s.Run("unknown decision", func() {
		_, err := s.uc.AdminRespond(s.ctx, uuid.New(), uuid.New(), commands.RespondRequest{Decision: "maybe"})
		s.ErrorIs(err, quotation.ErrInvalidDecision)
	})

	s.Run("unknown quotation", func() {
		_, err := s.uc.AdminRespond(s.ctx, uuid.New(), uuid.New(), commands.RespondRequest{Decision: "accept"})
		s.ErrorIs(err, quotation.ErrNotFound)
		s.ErrorIs(err, errs.ErrNotFound)
	})
}

func (s *QuotationCommandsTestSuite) TestRespond_Expired() {
	q := s.seed()
	s.clock.Set(q.ValidTill().Add(time.Second))

	_, err := s.uc.CustomerRespond(s.ctx, q.ID(), s.qb.CustomerID, commands.RespondRequest{Decision: "accept"})
	s.ErrorIs(err, quotation.ErrExpired)

	stored, _ := s.store.storedQuotation(q.ID())
	s.Equal(quotation.StatusExpired, stored.Status)
	s.Equal(quotation.TrackPending, stored.Customer.Status)
	s.Equal(int32(2), stored.Version)

	s.Run("later calls keep the stored row as is", func() {
		commits := s.store.commits
		_, err := s.uc.AdminRespond(s.ctx, q.ID(), uuid.New(), commands.RespondRequest{Decision: "reject", Reason: ptr.Of("late")})
		s.ErrorIs(err, quotation.ErrExpired)

		again, _ := s.store.storedQuotation(q.ID())
		if diff := cmp.Diff(stored, again); diff != "" {
			s.Failf("stored quotation changed", "(-want +got):\n%s", diff)
		}
		s.Equal(commits+1, s.store.commits)
	})
}

func (s *QuotationCommandsTestSuite) TestAdminRespond_Franchise() {
	s.qb.AsFranchise()
	q := s.seed()
	adminID := uuid.New()

	_, err := s.uc.AdminRespond(s.ctx, q.ID(), adminID, commands.RespondRequest{Decision: "accept"})
	s.ErrorIs(err, quotation.ErrPartnerApprovalPending)

	s.expectEvents()
	_, err = s.uc.PartnerRespond(s.ctx, q.ID(), s.qb.PartnerID, commands.RespondRequest{Decision: "accept"})
	s.Require().NoError(err)

	got := s.expectEvents()
	updated, err := s.uc.AdminRespond(s.ctx, q.ID(), adminID, commands.RespondRequest{Decision: "accept"})
	s.Require().NoError(err)
	s.Equal(quotation.StatusAdminAccepted, updated.Status())
	s.Require().NotNil(updated.Admin().ReviewerID)
	s.Equal(adminID, *updated.Admin().ReviewerID)
	s.Equal([]shared.PartyRole{shared.PartyCustomer, shared.PartyPartner}, recipients(*got))
}

func (s *QuotationCommandsTestSuite) TestPartnerRespond_NotRequired() {
	q := s.seed()

	_, err := s.uc.PartnerRespond(s.ctx, q.ID(), s.qb.PartnerID, commands.RespondRequest{Decision: "accept"})
	s.ErrorIs(err, quotation.ErrPartnerApprovalNotNeeded)
	s.ErrorIs(err, errs.ErrInvalidState)
}

func (s *QuotationCommandsTestSuite) TestWithdrawQuotation() {
	s.Run("someone else's quotation", func() {
		q := s.seed()
		err := s.uc.WithdrawQuotation(s.ctx, q.ID(), uuid.New())
		s.ErrorIs(err, quotation.ErrNotPartner)
	})

	s.Run("before the customer answers", func() {
		q := s.seed()
		got := s.expectEvents()

		s.Require().NoError(s.uc.WithdrawQuotation(s.ctx, q.ID(), s.qb.PartnerID))
		_, ok := s.store.storedQuotation(q.ID())
		s.False(ok)
		s.Equal([]shared.PartyRole{shared.PartyCustomer, shared.PartyAdmin}, recipients(*got))
		s.Equal(shared.EventQuotationWithdrawn, (*got)[0].Kind)
	})

	s.Run("after the customer answered", func() {
		q := s.seed()
		s.expectEvents()
		_, err := s.uc.CustomerRespond(s.ctx, q.ID(), s.qb.CustomerID, commands.RespondRequest{Decision: "reject", Reason: ptr.Of("too expensive")})
		s.Require().NoError(err)

		err = s.uc.WithdrawQuotation(s.ctx, q.ID(), s.qb.PartnerID)
		s.ErrorIs(err, quotation.ErrCustomerAlreadyResponded)
		_, ok := s.store.storedQuotation(q.ID())
		s.True(ok)
	})
}
