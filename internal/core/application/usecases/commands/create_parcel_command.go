package commands

import (
	"errors"
	"fmt"
	"strings"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
	"smartlogi/internal/pkg/errs"
	"smartlogi/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// ParcelItem is one requested line of a new parcel. The unit weight is looked up
// from the product catalogue by the handler.
type ParcelItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateParcelCommand registers a new parcel on behalf of a sender.
//
// Status, weight and timestamps are never part of the command: the handler derives them.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID        kernel.UUID
	senderID        kernel.UUID
	recipientID     kernel.UUID
	description     string
	priority        parcel.Priority
	destinationCity string
	items           []ParcelItem

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand validates the request shape. Whether the sender, recipient
// and products exist is checked by the handler.
func NewCreateParcelCommand(
	parcelID, senderID, recipientID kernel.UUID,
	description string,
	priority parcel.Priority,
	destinationCity string,
	items []ParcelItem,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		description:     strings.TrimSpace(description),
		destinationCity: strings.TrimSpace(destinationCity),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setParticipants(senderID, recipientID),
		cmd.setPriority(priority),
		cmd.setItems(items),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

func (c CreateParcelCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c CreateParcelCommand) Description() string {
	return c.description
}

func (c CreateParcelCommand) Priority() parcel.Priority {
	return c.priority
}

func (c CreateParcelCommand) DestinationCity() string {
	return c.destinationCity
}

// Items returns a copy of the requested lines in request order.
func (c CreateParcelCommand) Items() []ParcelItem {
	items := make([]ParcelItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *CreateParcelCommand) setParticipants(senderID, recipientID kernel.UUID) error {
	if err := errors.Join(senderID.Validate(), recipientID.Validate()); err != nil {
		return err
	}
	c.senderID = senderID
	c.recipientID = recipientID
	return nil
}

// setPriority maps PriorityUnknown, the zero value, to PriorityNormal.
func (c *CreateParcelCommand) setPriority(priority parcel.Priority) error {
	if priority == parcel.PriorityUnknown {
		priority = parcel.PriorityNormal
	}
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *CreateParcelCommand) setItems(items []ParcelItem) error {
	if len(items) == 0 {
		return errs.NewRuleViolationError("parcel must contain at least one item")
	}

	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].productId", i), err)
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}

	c.items = make([]ParcelItem, len(items))
	copy(c.items, items)
	return nil
}
