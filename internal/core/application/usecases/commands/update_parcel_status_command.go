package commands

import (
	"errors"
	"strings"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"
	"smartlogi/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand asks to move a parcel to a new status on behalf of principal.
//
// The requested status is not validated here: an undefined status is rejected by the
// transition policy with its own reason.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	status    parcel.Status
	comment   *string
	principal actor.Principal

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand builds the command. A blank comment is dropped.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	status parcel.Status,
	comment *string,
	principal actor.Principal,
) (UpdateParcelStatusCommand, error) {
	var principalErr error
	if !principal.IsAuthenticated() {
		principalErr = errs.NewValueIsRequiredError("principal")
	}

	if err := errors.Join(parcelID.Validate(), principalErr); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	if comment != nil {
		trimmed := strings.TrimSpace(*comment)
		if trimmed == "" {
			comment = nil
		} else {
			comment = &trimmed
		}
	}

	return UpdateParcelStatusCommand{
		parcelID:  parcelID,
		status:    status,
		comment:   comment,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

func (c UpdateParcelStatusCommand) Comment() *string {
	return c.comment
}

func (c UpdateParcelStatusCommand) Principal() actor.Principal {
	return c.principal
}
