package queries

import (
	"context"

	"smartlogi/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// StatusSummary maps every status to its parcel count, zero included.
type StatusSummary map[parcel.Status]int64

// Total is the number of parcels across all statuses.
func (s StatusSummary) Total() int64 {
	var total int64
	for _, n := range s {
		total += n
	}
	return total
}

type GetStatusSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetStatusSummaryQueryHandler(db *gorm.DB) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{db: db}
}

func (h GetStatusSummaryQueryHandler) Handle(ctx context.Context, query GetStatusSummaryQuery) (StatusSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summary := make(StatusSummary, len(parcel.Statuses()))
	for _, s := range parcel.Statuses() {
		summary[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM parcels
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var count int64
		if err = rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		status, parseErr := parcel.ParseStatus(name)
		if parseErr != nil {
			return nil, parseErr
		}
		summary[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return summary, nil
}
