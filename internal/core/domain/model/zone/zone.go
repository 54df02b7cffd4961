// Package zone models delivery zones that parcels and couriers are attached to.
package zone

import (
	"errors"
	"strings"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

type Zone struct {
	id            kernel.UUID
	name          string
	postalCode    string
	isConstructed bool
}

func NewZone(id kernel.UUID, name, postalCode string) (*Zone, error) {
	var nameErr, codeErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(postalCode) == "" {
		codeErr = errs.NewValueIsRequiredError("postal code")
	}

	if err := errors.Join(id.Validate(), nameErr, codeErr); err != nil {
		return nil, err
	}

	return &Zone{id: id, name: name, postalCode: postalCode, isConstructed: true}, nil
}

func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

func (z *Zone) PostalCode() string {
	return z.postalCode
}
