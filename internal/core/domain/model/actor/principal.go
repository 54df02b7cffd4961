package actor

import "smartlogi/internal/core/domain/model/kernel"

// Principal is the authenticated caller of an operation. The zero value is anonymous.
type Principal struct {
	id            kernel.UUID
	role          Role
	authenticated bool
}

func NewPrincipal(id kernel.UUID, role Role) Principal {
	if id.Validate() != nil || role.Validate() != nil {
		return Anonymous()
	}
	return Principal{id: id, role: role, authenticated: true}
}

func Anonymous() Principal {
	return Principal{}
}

func (p Principal) ID() kernel.UUID {
	return p.id
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) IsAuthenticated() bool {
	return p.authenticated
}

// HasRole is false for anonymous principals.
func (p Principal) HasRole(r Role) bool {
	return p.authenticated && p.role == r
}

// Is reports whether the principal is the actor identified by id.
func (p Principal) Is(id kernel.UUID) bool {
	return p.authenticated && p.id.IsEqual(id)
}
