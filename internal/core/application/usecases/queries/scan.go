package queries

import (
	"database/sql"
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

const parcelColumns = `
	id,
	description,
	weight,
	status,
	priority,
	destination_city,
	sender_id,
	recipient_id,
	courier_id,
	zone_id,
	created_at,
	status_changed_at`

func scanParcel(rows *sql.Rows) (ParcelView, error) {
	var (
		view                       ParcelView
		id, senderID, recipientID  uuid.UUID
		courierID, zoneID          uuid.NullUUID
		status, priority           string
		createdAt, statusChangedAt time.Time
	)

	if err := rows.Scan(
		&id,
		&view.Description,
		&view.Weight,
		&status,
		&priority,
		&view.DestinationCity,
		&senderID,
		&recipientID,
		&courierID,
		&zoneID,
		&createdAt,
		&statusChangedAt,
	); err != nil {
		return ParcelView{}, err
	}

	var err error
	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ParcelView{}, err
	}
	if view.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return ParcelView{}, err
	}
	if view.RecipientID, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
		return ParcelView{}, err
	}
	if view.CourierID, err = nullableID(courierID); err != nil {
		return ParcelView{}, err
	}
	if view.ZoneID, err = nullableID(zoneID); err != nil {
		return ParcelView{}, err
	}
	if view.Status, err = parcel.ParseStatus(status); err != nil {
		return ParcelView{}, err
	}
	if view.Priority, err = parcel.ParsePriority(priority); err != nil {
		return ParcelView{}, err
	}

	view.CreatedAt = createdAt.UTC()
	view.StatusChangedAt = statusChangedAt.UTC()
	view.Items = make([]LineItemView, 0)
	return view, nil
}

func nullableID(n uuid.NullUUID) (*kernel.UUID, error) {
	if !n.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(n.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
