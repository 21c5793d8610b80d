package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. Customers own bookings, partners serve them and admins review quotations.
type User struct {
	id        uuid.UUID
	name      string
	email     Email
	phone     Phone
	role      Role
	createdAt time.Time
}

func NewUser(name, email, phone, role string, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}
	r, err := NewRole(role)
	if err != nil {
		return nil, err
	}
	return &User{
		id:        uuid.New(),
		name:      name,
		email:     e,
		phone:     p,
		role:      r,
		createdAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, name string, email Email, phone Phone, role Role, createdAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		role:      role,
		createdAt: createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) Phone() Phone         { return u.phone }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) ContactInfo() ContactInfo {
	return ContactInfo{
		Name:  u.name,
		Email: u.email.Value(),
		Phone: u.phone.Value(),
	}
}
