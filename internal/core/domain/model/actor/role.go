package actor

import (
	"fmt"
	"strings"

	"smartlogi/internal/pkg/errs"
)

type Role string

const (
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleManager       Role = "MANAGER"
	RoleCourier       Role = "COURIER"
	RoleSender        Role = "SENDER"
	RoleRecipient     Role = "RECIPIENT"
)

// Roles lists every role.
func Roles() []Role {
	return []Role{RoleAdministrator, RoleManager, RoleCourier, RoleSender, RoleRecipient}
}

// ParseRole maps a role name (case-insensitive) to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	for _, known := range Roles() {
		if r == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
}

func (r Role) String() string {
	return string(r)
}
