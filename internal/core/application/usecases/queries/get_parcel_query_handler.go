package queries

import (
	"context"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetParcelQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when the parcel does not exist.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(`SELECT `+parcelColumns+`
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return ParcelView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelView{}, err
		}
		return ParcelView{}, errs.NewObjectNotFoundError("parcel", query.ParcelID().String())
	}

	view, err := scanParcel(rows)
	if err != nil {
		return ParcelView{}, err
	}
	if err = rows.Close(); err != nil {
		return ParcelView{}, err
	}

	view.Items, err = loadLineItems(ctx, h.db, view.ID)
	if err != nil {
		return ParcelView{}, err
	}
	return view, nil
}

func loadLineItems(ctx context.Context, db *gorm.DB, parcelID kernel.UUID) ([]LineItemView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_weight
		FROM parcel_line_items
		WHERE parcel_id = ?
		ORDER BY position
	`, parcelID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LineItemView, 0)
	for rows.Next() {
		var item LineItemView
		var productID uuid.UUID

		if err = rows.Scan(&productID, &item.Quantity, &item.UnitWeight); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
