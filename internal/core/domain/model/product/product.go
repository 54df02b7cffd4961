// Package product models catalogue items referenced by parcel line items.
package product

import (
	"errors"
	"fmt"
	"strings"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalogue entry with a positive unit weight in kilograms.
type Product struct {
	id            kernel.UUID
	name          string
	weight        float64
	isConstructed bool
}

func NewProduct(id kernel.UUID, name string, weight float64) (*Product, error) {
	var nameErr, weightErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if weight <= 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is not greater than 0", weight))
	}

	if err := errors.Join(id.Validate(), nameErr, weightErr); err != nil {
		return nil, err
	}

	return &Product{id: id, name: name, weight: weight, isConstructed: true}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

// Weight is the unit weight.
func (p *Product) Weight() float64 {
	return p.weight
}
