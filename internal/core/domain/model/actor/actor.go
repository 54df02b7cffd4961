package actor

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via its role constructor")

// Profile is the role-specific part of an Actor. The set of variants is closed.
type Profile interface {
	isProfile()
}

// StaffProfile is the empty profile of administrators and managers.
type StaffProfile struct{}

// CourierProfile describes a delivery courier.
type CourierProfile struct {
	Vehicle string
	ZoneID  *kernel.UUID
}

// AddressProfile is the postal address of a sender or recipient.
type AddressProfile struct {
	Address string
}

func (StaffProfile) isProfile()   {}
func (CourierProfile) isProfile() {}
func (AddressProfile) isProfile() {}

// Contact groups the fields shared by every actor.
type Contact struct {
	Name  string
	Phone string
	Email string
}

type Actor struct {
	id            kernel.UUID
	contact       Contact
	role          Role
	profile       Profile
	isConstructed bool
}

func NewAdministrator(id kernel.UUID, contact Contact) (*Actor, error) {
	return newActor(id, contact, RoleAdministrator, StaffProfile{})
}

func NewManager(id kernel.UUID, contact Contact) (*Actor, error) {
	return newActor(id, contact, RoleManager, StaffProfile{})
}

// NewCourier creates a courier. zoneID may be nil.
func NewCourier(id kernel.UUID, contact Contact, vehicle string, zoneID *kernel.UUID) (*Actor, error) {
	if strings.TrimSpace(vehicle) == "" {
		return nil, errs.NewValueIsRequiredError("vehicle")
	}
	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			return nil, err
		}
	}
	return newActor(id, contact, RoleCourier, CourierProfile{Vehicle: vehicle, ZoneID: zoneID})
}

func NewSender(id kernel.UUID, contact Contact, address string) (*Actor, error) {
	return newActor(id, contact, RoleSender, AddressProfile{Address: address})
}

func NewRecipient(id kernel.UUID, contact Contact, address string) (*Actor, error) {
	return newActor(id, contact, RoleRecipient, AddressProfile{Address: address})
}

// RestoreActor rebuilds an actor read back from storage; the profile must match the role.
func RestoreActor(id kernel.UUID, contact Contact, role Role, profile Profile) (*Actor, error) {
	return newActor(id, contact, role, profile)
}

func newActor(id kernel.UUID, contact Contact, role Role, profile Profile) (*Actor, error) {
	var nameErr, emailErr error
	if strings.TrimSpace(contact.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if _, err := mail.ParseAddress(contact.Email); err != nil {
		emailErr = errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	if err := errors.Join(
		id.Validate(),
		role.Validate(),
		nameErr,
		emailErr,
		checkProfile(role, profile),
	); err != nil {
		return nil, err
	}

	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	return &Actor{
		id:            id,
		contact:       contact,
		role:          role,
		profile:       profile,
		isConstructed: true,
	}, nil
}

func checkProfile(role Role, profile Profile) error {
	var ok bool
	switch role {
	case RoleAdministrator, RoleManager:
		_, ok = profile.(StaffProfile)
	case RoleCourier:
		_, ok = profile.(CourierProfile)
	case RoleSender, RoleRecipient:
		_, ok = profile.(AddressProfile)
	default:
		return nil
	}
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("profile", fmt.Errorf("%T does not match role %s", profile, role))
	}
	return nil
}

func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

func (a *Actor) ID() kernel.UUID {
	return a.id
}

func (a *Actor) Name() string {
	return a.contact.Name
}

func (a *Actor) Phone() string {
	return a.contact.Phone
}

func (a *Actor) Email() string {
	return a.contact.Email
}

func (a *Actor) Role() Role {
	return a.role
}

func (a *Actor) Profile() Profile {
	return a.profile
}

// HasRole reports whether the actor plays role r.
func (a *Actor) HasRole(r Role) bool {
	return a.role == r
}

// Principal returns the actor as an authenticated caller.
func (a *Actor) Principal() Principal {
	return NewPrincipal(a.id, a.role)
}
