// Package actor represents resolved principals: staff, administrators, and
// customers acting on the system. Identity issuance and role authorization
// happen outside the core; actors arrive here already resolved.
package actor

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role is an actor's function in the business.
type Role string

const (
	RoleCustomer        Role = "CUSTOMER"
	RoleLaundryStaff    Role = "LAUNDRY_STAFF"
	RoleDeliveryStaff   Role = "DELIVERY_STAFF"
	RoleFinanceStaff    Role = "FINANCE_STAFF"
	RoleCustomerService Role = "CUSTOMER_SERVICE"
	RoleAdmin           Role = "ADMIN"
)

// Validate checks membership in the closed role set.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleLaundryStaff, RoleDeliveryStaff,
		RoleFinanceStaff, RoleCustomerService, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidError("role " + string(r))
	}
}

// String returns the wire/storage name of the role.
func (r Role) String() string {
	return string(r)
}

// Actor is a resolved principal.
type Actor struct {
	id    kernel.UUID
	name  string
	email string
	role  Role

	isConstructed bool
}

// NewActor creates a resolved actor record.
func NewActor(id kernel.UUID, name, email string, role Role) (*Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Actor{
		id:            id,
		name:          name,
		email:         email,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the actor was built through the constructor.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor identifier.
func (a *Actor) ID() kernel.UUID { return a.id }

// Name returns the actor's display name.
func (a *Actor) Name() string { return a.name }

// Email returns the actor's email address.
func (a *Actor) Email() string { return a.email }

// Role returns the actor's role.
func (a *Actor) Role() Role { return a.role }

// IsAdmin reports whether the actor holds the administrative role.
func (a *Actor) IsAdmin() bool { return a.role == RoleAdmin }
