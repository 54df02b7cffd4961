package commands

import (
	"errors"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the catalogue. Name and weight are checked
// by the product aggregate.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	weight    float64

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(productID kernel.UUID, name string, weight float64) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{
		productID: productID,
		name:      name,
		weight:    weight,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Weight() float64 {
	return c.weight
}
