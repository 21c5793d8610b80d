package booking

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// transitions is the lifecycle graph. accepted and in_progress fall back to pending on partner rejection.
var transitions = map[Status][]Status{
	StatusPending:    {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusPending, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusPending, StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsActive reports whether a partner is working on the booking and an OTP may be live.
func (s Status) IsActive() bool {
	return s == StatusAccepted || s == StatusInProgress
}

// HoldsPartner reports whether a partner reference is allowed in this status.
func (s Status) HoldsPartner() bool {
	return s.IsActive() || s == StatusCompleted
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}
