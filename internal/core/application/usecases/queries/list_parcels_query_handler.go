package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle returns parcels without their line items. The status filter binds a
// postgres array, so it needs the postgres driver.
func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT ` + parcelColumns + ` FROM parcels`
	args := make([]any, 0, 3)

	if statuses := query.Statuses(); len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		sql += ` WHERE status = ANY(?)`
		args = append(args, pq.Array(names))
	}

	sql += ` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ParcelView, 0)
	for rows.Next() {
		view, scanErr := scanParcel(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return parcels, nil
}
