package partner

import (
	"errors"

	"marketplace-core/internal/pkg/errs"
)

var (
	ErrInvalidPartnerType = errors.New("invalid partner type")
	ErrNotFound           = errs.NewKind("partner not found", errs.ErrNotFound)
)

// Type decides whether quotations raised by the partner need the partner approval track.
type Type string

const (
	TypeIndividual Type = "individual"
	TypeFranchise  Type = "franchise"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeIndividual, TypeFranchise:
		return true
	default:
		return false
	}
}

func (t Type) RequiresApproval() bool {
	return t == TypeFranchise
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidPartnerType
	}
	return t, nil
}
