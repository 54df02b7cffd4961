package parcel

import (
	"errors"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"
)

// CreationComment is the system comment of the first history record of every parcel.
const CreationComment = "parcel created"

// HistoryRecord is one immutable entry of a parcel's status audit trail.
type HistoryRecord struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	status    Status
	changedAt time.Time
	comment   *string
}

// NewHistoryRecord creates a record with a fresh identifier. A zero changedAt is
// rejected: the caller stamps it with the same instant written to the parcel.
func NewHistoryRecord(parcelID kernel.UUID, status Status, changedAt time.Time, comment *string) (HistoryRecord, error) {
	return RestoreHistoryRecord(kernel.NewUUID(), parcelID, status, changedAt, comment)
}

// RestoreHistoryRecord rebuilds a record read back from storage.
func RestoreHistoryRecord(
	id, parcelID kernel.UUID,
	status Status,
	changedAt time.Time,
	comment *string,
) (HistoryRecord, error) {
	var timeErr error
	if changedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredErrorWithCause("changedAt", errors.New("history timestamp must be set"))
	}

	if err := errors.Join(id.Validate(), parcelID.Validate(), status.Validate(), timeErr); err != nil {
		return HistoryRecord{}, err
	}

	return HistoryRecord{
		id:        id,
		parcelID:  parcelID,
		status:    status,
		changedAt: changedAt.UTC(),
		comment:   comment,
	}, nil
}

func (h HistoryRecord) ID() kernel.UUID {
	return h.id
}

func (h HistoryRecord) ParcelID() kernel.UUID {
	return h.parcelID
}

func (h HistoryRecord) Status() Status {
	return h.status
}

func (h HistoryRecord) ChangedAt() time.Time {
	return h.changedAt
}

// Comment returns the free-text comment, nil when none was given.
func (h HistoryRecord) Comment() *string {
	return h.comment
}
