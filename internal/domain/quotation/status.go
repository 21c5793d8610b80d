package quotation

// DeriveStatus reduces the three tracks to the overall status.
// Expiry wins over every other rule; otherwise rules apply in order, first match wins.
func DeriveStatus(customer, partner, admin TrackStatus, expired bool) Status {
	if expired {
		return StatusExpired
	}

	switch {
	case customer == TrackRejected:
		return StatusCustomerRejected
	case partner == TrackRejected:
		return StatusPartnerRejected
	case admin == TrackRejected:
		return StatusAdminRejected
	}

	partnerSettled := partner == TrackAccepted || partner == TrackNotRequired

	switch {
	case customer == TrackAccepted && admin == TrackAccepted && partnerSettled:
		return StatusApproved
	case customer == TrackAccepted && partner == TrackPending:
		return StatusCustomerAcceptedPartnerPending
	case customer == TrackAccepted && partner == TrackAccepted && admin == TrackPending:
		return StatusPartnerAcceptedAdminPending
	case customer == TrackAccepted && partner == TrackNotRequired && admin == TrackPending:
		return StatusCustomerAcceptedAdminPending
	case admin == TrackAccepted && customer == TrackPending:
		return StatusAdminAccepted
	default:
		return StatusPending
	}
}
