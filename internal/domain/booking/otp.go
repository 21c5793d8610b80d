package booking

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"marketplace-core/internal/pkg/errs"
)

const OTPLength = 6

var otpUpperBound = big.NewInt(1_000_000)

// OTP is a 6-digit completion code. Leading zeros are significant.
type OTP struct {
	code string
}

func NewOTP(code string) (OTP, error) {
	if len(code) != OTPLength {
		return OTP{}, ErrMalformedOTP
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return OTP{}, ErrMalformedOTP
		}
	}
	return OTP{code: code}, nil
}

func (o OTP) String() string { return o.code }
func (o OTP) IsZero() bool   { return o.code == "" }

type OTPGenerator interface {
	Generate() (OTP, error)
}

// RandomOTP draws codes uniformly from 000000-999999 using crypto/rand.
type RandomOTP struct{}

func NewRandomOTP() *RandomOTP {
	return &RandomOTP{}
}

func (RandomOTP) Generate() (OTP, error) {
	n, err := rand.Int(rand.Reader, otpUpperBound)
	if err != nil {
		return OTP{}, errs.Wrap(err, "generate otp")
	}
	return NewOTP(fmt.Sprintf("%06d", n.Int64()))
}

func (b *Booking) activateOTP(code OTP) {
	b.otp = &code
	b.otpActive = true
}

// VerifyOTP compares without consuming the code.
func (b *Booking) VerifyOTP(submitted string) bool {
	if b.otp == nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(b.otp.code), []byte(submitted)) == 1
}

func (b *Booking) invalidateOTP() {
	b.otp = nil
	b.otpActive = false
}
