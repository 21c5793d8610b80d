package partner

import (
	"github.com/google/uuid"

	"marketplace-core/internal/domain/user"
)

// Partner is the service-side view of a user with the partner role.
type Partner struct {
	id          uuid.UUID
	partnerType Type
	contact     user.ContactInfo
}

func Reconstruct(id uuid.UUID, partnerType Type, contact user.ContactInfo) *Partner {
	return &Partner{
		id:          id,
		partnerType: partnerType,
		contact:     contact,
	}
}

func (p *Partner) ID() uuid.UUID                 { return p.id }
func (p *Partner) Type() Type                    { return p.partnerType }
func (p *Partner) ContactInfo() user.ContactInfo { return p.contact }
