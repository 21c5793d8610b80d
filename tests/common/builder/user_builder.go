//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-core/internal/domain/user"
)

type UserBuilder struct {
	Name  string
	Email string
	Phone string
	Role  string
	Now   time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:  "Asha Customer",
		Email: "asha@example.com",
		Phone: "+919800000001",
		Role:  string(user.RoleCustomer),
		Now:   time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.Name, u.Email, u.Phone, u.Role, u.Now)
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = string(role)
	return u
}
