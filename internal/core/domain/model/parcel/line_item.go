package parcel

import (
	"errors"
	"fmt"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

// LineItem is one product line of a parcel. The unit weight is copied from the
// product when the parcel is created so that later catalogue edits do not alter
// the parcel's weight.
type LineItem struct {
	productID  kernel.UUID
	quantity   int
	unitWeight float64
}

func NewLineItem(productID kernel.UUID, quantity int, unitWeight float64) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitWeight <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is not greater than 0", unitWeight))
	}
	return LineItem{productID: productID, quantity: quantity, unitWeight: unitWeight}, nil
}

func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) UnitWeight() float64 {
	return li.unitWeight
}

// Weight is unit weight times quantity.
func (li LineItem) Weight() float64 {
	return li.unitWeight * float64(li.quantity)
}

// TotalWeight sums the line weights in slice order.
func TotalWeight(items []LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.Weight()
	}
	return total
}

var errNoLineItems = errors.New("parcel must contain at least one line item")
