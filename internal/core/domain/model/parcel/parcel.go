package parcel

import (
	"errors"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel did not come from NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrParcelAlreadyDelivered is the rejection reason for any status change from DELIVERED.
	ErrParcelAlreadyDelivered = errs.NewRuleViolationError("parcel already delivered")
)

// Parcel is the aggregate root of a shipment.
//
// Invariants:
//   - sender and recipient are always set, courier and zone are optional
//   - at least one line item, weight equals TotalWeight(lineItems)
//   - status is a valid Status, starting at Created
//   - createdAt is set once; statusChangedAt only moves forward
//
// Who may change the status is not decided here; see services.TransitionPolicy.
type Parcel struct {
	id              kernel.UUID
	senderID        kernel.UUID
	recipientID     kernel.UUID
	courierID       *kernel.UUID
	zoneID          *kernel.UUID
	description     string
	destinationCity string
	priority        Priority
	status          Status
	weight          float64
	lineItems       []LineItem
	createdAt       time.Time
	statusChangedAt time.Time
	version         int
	isConstructed   bool
}

// NewParcel creates a parcel in status Created, stamped with now.
// The weight is computed from the line items; the caller never supplies it.
func NewParcel(
	id, senderID, recipientID kernel.UUID,
	description string,
	priority Priority,
	destinationCity string,
	lineItems []LineItem,
	now time.Time,
) (*Parcel, error) {
	var timeErr error
	if now.IsZero() {
		timeErr = errs.NewValueIsRequiredError("createdAt")
	}

	var itemsErr error
	if len(lineItems) == 0 {
		itemsErr = errs.NewValueIsInvalidErrorWithCause("line items", errNoLineItems)
	}

	if err := errors.Join(
		id.Validate(),
		senderID.Validate(),
		recipientID.Validate(),
		priority.Validate(),
		itemsErr,
		timeErr,
	); err != nil {
		return nil, err
	}

	items := make([]LineItem, len(lineItems))
	copy(items, lineItems)

	return &Parcel{
		id:              id,
		senderID:        senderID,
		recipientID:     recipientID,
		description:     description,
		destinationCity: destinationCity,
		priority:        priority,
		status:          Created,
		weight:          TotalWeight(items),
		lineItems:       items,
		createdAt:       now.UTC(),
		statusChangedAt: now.UTC(),
		isConstructed:   true,
	}, nil
}

// Snapshot carries the persisted state of a parcel for RestoreParcel.
type Snapshot struct {
	ID              kernel.UUID
	SenderID        kernel.UUID
	RecipientID     kernel.UUID
	CourierID       *kernel.UUID
	ZoneID          *kernel.UUID
	Description     string
	DestinationCity string
	Priority        Priority
	Status          Status
	Weight          float64
	LineItems       []LineItem
	CreatedAt       time.Time
	StatusChangedAt time.Time
	Version         int
}

// RestoreParcel rebuilds a parcel read back from storage. The stored weight is kept
// as is, since it was computed at creation time.
func RestoreParcel(s Snapshot) (*Parcel, error) {
	var itemsErr error
	if len(s.LineItems) == 0 {
		itemsErr = errs.NewValueIsInvalidErrorWithCause("line items", errNoLineItems)
	}

	if err := errors.Join(
		s.ID.Validate(),
		s.SenderID.Validate(),
		s.RecipientID.Validate(),
		s.Priority.Validate(),
		s.Status.Validate(),
		itemsErr,
	); err != nil {
		return nil, err
	}

	items := make([]LineItem, len(s.LineItems))
	copy(items, s.LineItems)

	return &Parcel{
		id:              s.ID,
		senderID:        s.SenderID,
		recipientID:     s.RecipientID,
		courierID:       s.CourierID,
		zoneID:          s.ZoneID,
		description:     s.Description,
		destinationCity: s.DestinationCity,
		priority:        s.Priority,
		status:          s.Status,
		weight:          s.Weight,
		lineItems:       items,
		createdAt:       s.CreatedAt.UTC(),
		statusChangedAt: s.StatusChangedAt.UTC(),
		version:         s.Version,
		isConstructed:   true,
	}, nil
}

func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) ID() kernel.UUID {
	return p.id
}

func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

func (p *Parcel) RecipientID() kernel.UUID {
	return p.recipientID
}

// CourierID returns the assigned courier, nil while unassigned.
func (p *Parcel) CourierID() *kernel.UUID {
	return p.courierID
}

// ZoneID returns the delivery zone, nil while unassigned.
func (p *Parcel) ZoneID() *kernel.UUID {
	return p.zoneID
}

func (p *Parcel) Description() string {
	return p.description
}

func (p *Parcel) DestinationCity() string {
	return p.destinationCity
}

func (p *Parcel) Priority() Priority {
	return p.priority
}

func (p *Parcel) Status() Status {
	return p.status
}

func (p *Parcel) Weight() float64 {
	return p.weight
}

// LineItems returns a copy of the line items in creation order.
func (p *Parcel) LineItems() []LineItem {
	items := make([]LineItem, len(p.lineItems))
	copy(items, p.lineItems)
	return items
}

func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Parcel) StatusChangedAt() time.Time {
	return p.statusChangedAt
}

// Version is the optimistic concurrency version the parcel was loaded with.
func (p *Parcel) Version() int {
	return p.version
}

func (p *Parcel) IsSender(actorID kernel.UUID) bool {
	return p.senderID.IsEqual(actorID)
}

func (p *Parcel) IsRecipient(actorID kernel.UUID) bool {
	return p.recipientID.IsEqual(actorID)
}

// IsAssignedCourier is false while no courier is assigned.
func (p *Parcel) IsAssignedCourier(actorID kernel.UUID) bool {
	return p.courierID != nil && p.courierID.IsEqual(actorID)
}

// ChangeStatus writes a status already approved by the transition policy.
//
// The new statusChangedAt is at, unless at is not after the previous change; then it
// is moved one microsecond past it so that history stays strictly ordered.
// A delivered parcel rejects every change with ErrParcelAlreadyDelivered.
func (p *Parcel) ChangeStatus(status Status, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if p.status.IsTerminal() {
		return ErrParcelAlreadyDelivered
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("statusChangedAt")
	}

	changedAt := at.UTC()
	if !changedAt.After(p.statusChangedAt) {
		changedAt = p.statusChangedAt.Add(time.Microsecond)
	}

	p.status = status
	p.statusChangedAt = changedAt
	return nil
}

// AssignCourier sets or replaces the courier. The status is left untouched.
func (p *Parcel) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	p.courierID = &courierID
	return nil
}

// AssignZone sets or replaces the delivery zone.
func (p *Parcel) AssignZone(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	p.zoneID = &zoneID
	return nil
}
