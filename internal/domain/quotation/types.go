package quotation

// TrackStatus is the sub-status of one approval track.
type TrackStatus string

const (
	TrackPending     TrackStatus = "pending"
	TrackAccepted    TrackStatus = "accepted"
	TrackRejected    TrackStatus = "rejected"
	TrackNotRequired TrackStatus = "not_required"
)

func (s TrackStatus) String() string {
	return string(s)
}

func (s TrackStatus) IsValid() bool {
	switch s {
	case TrackPending, TrackAccepted, TrackRejected, TrackNotRequired:
		return true
	default:
		return false
	}
}

// Status is the overall quotation status. It is only ever produced by DeriveStatus.
type Status string

const (
	StatusPending                        Status = "pending"
	StatusCustomerAcceptedPartnerPending Status = "customer_accepted_partner_pending"
	StatusCustomerAcceptedAdminPending   Status = "customer_accepted_admin_pending"
	StatusPartnerAcceptedAdminPending    Status = "partner_accepted_admin_pending"
	StatusAdminAccepted                  Status = "admin_accepted"
	StatusApproved                       Status = "approved"
	StatusCustomerRejected               Status = "customer_rejected"
	StatusPartnerRejected                Status = "partner_rejected"
	StatusAdminRejected                  Status = "admin_rejected"
	StatusExpired                        Status = "expired"
)

var allStatuses = []Status{
	StatusPending,
	StatusCustomerAcceptedPartnerPending,
	StatusCustomerAcceptedAdminPending,
	StatusPartnerAcceptedAdminPending,
	StatusAdminAccepted,
	StatusApproved,
	StatusCustomerRejected,
	StatusPartnerRejected,
	StatusAdminRejected,
	StatusExpired,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	for _, v := range allStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s Status) IsRejected() bool {
	return s == StatusCustomerRejected || s == StatusPartnerRejected || s == StatusAdminRejected
}

// Decision is a party's answer on its track.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

func NewDecision(s string) (Decision, error) {
	d := Decision(s)
	if d != DecisionAccept && d != DecisionReject {
		return "", ErrInvalidDecision
	}
	return d, nil
}

func (d Decision) trackStatus() TrackStatus {
	if d == DecisionAccept {
		return TrackAccepted
	}
	return TrackRejected
}

// Party names a track owner. Used to address notifications.
type Party string

const (
	PartyCustomer Party = "customer"
	PartyPartner  Party = "partner"
	PartyAdmin    Party = "admin"
)
