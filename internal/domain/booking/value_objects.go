package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxReasonLength = 500
	MaxRemarkLength = 1000

	// CancellationWindow is measured from creation, inclusive at the boundary.
	CancellationWindow = 2 * time.Hour
)

type Reason struct {
	value string
}

func NewReason(s string) (Reason, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Reason{}, ErrReasonRequired
	}
	if utf8.RuneCountInString(s) > MaxReasonLength {
		return Reason{}, ErrReasonTooLong
	}
	return Reason{value: s}, nil
}

func (r Reason) String() string { return r.value }

// RejectionRecord is one entry of the append-only rejection history.
type RejectionRecord struct {
	PartnerID  uuid.UUID `json:"partner_id"`
	Reason     string    `json:"reason"`
	RejectedAt time.Time `json:"rejected_at"`
}
