//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

func TestRandomOTP_Generate(t *testing.T) {
	gen := booking.NewRandomOTP()
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Regexp(t, sixDigits, code.String())
		seen[code.String()] = struct{}{}
	}
	// 500 draws from a million values should almost never collide more than a handful of times.
	assert.Greater(t, len(seen), 490)
}

func TestNewOTP(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "leading zeros", input: "000123", ok: true},
		{name: "all nines", input: "999999", ok: true},
		{name: "five digits", input: "12345"},
		{name: "seven digits", input: "1234567"},
		{name: "letters", input: "12a456"},
		{name: "full-width digits", input: "１２３４５６"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := booking.NewOTP(tt.input)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.input, o.String())
				return
			}
			require.ErrorIs(t, err, booking.ErrMalformedOTP)
		})
	}
}

func TestBooking_VerifyOTP(t *testing.T) {
	partnerID := uuid.New()
	b, err := builder.NewBookingBuilder().BuildAccepted(partnerID, "031415")
	require.NoError(t, err)

	assert.False(t, b.VerifyOTP("031416"))
	assert.False(t, b.VerifyOTP("31415"))
	assert.True(t, b.VerifyOTP("031415"))
	// verification does not consume the code
	assert.True(t, b.VerifyOTP("031415"))
	assert.True(t, b.OTPActive())

	pending, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	assert.False(t, pending.VerifyOTP(""))
}

func TestBooking_RegeneratedOTPReplacesPrevious(t *testing.T) {
	partnerID := uuid.New()
	bb := builder.NewBookingBuilder()
	b, err := bb.BuildAccepted(partnerID, "111111")
	require.NoError(t, err)

	require.NoError(t, b.Reject(partnerID, mustReason(t, "busy"), bb.Now.Add(20*time.Minute)))
	require.NoError(t, b.Accept(partnerID, mustOTP(t, "222222"), bb.Now.Add(30*time.Minute)))

	assert.False(t, b.VerifyOTP("111111"))
	require.ErrorIs(t, b.Complete(partnerID, "111111", nil, bb.Now.Add(40*time.Minute)), booking.ErrInvalidOtp)
	require.NoError(t, b.Complete(partnerID, "222222", nil, bb.Now.Add(41*time.Minute)))
}
