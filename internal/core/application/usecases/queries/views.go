package queries

import (
	"time"

	"smartlogi/internal/core/domain/model/kernel"
	"smartlogi/internal/core/domain/model/parcel"
)

// ParcelView is the read model of a parcel.
type ParcelView struct {
	ID              kernel.UUID
	Description     string
	Weight          float64
	Status          parcel.Status
	Priority        parcel.Priority
	DestinationCity string
	SenderID        kernel.UUID
	RecipientID     kernel.UUID
	CourierID       *kernel.UUID
	ZoneID          *kernel.UUID
	CreatedAt       time.Time
	StatusChangedAt time.Time
	Items           []LineItemView
}

type LineItemView struct {
	ProductID  kernel.UUID
	Quantity   int
	UnitWeight float64
}

// HistoryView is one entry of a parcel's status history.
type HistoryView struct {
	ID        kernel.UUID
	Status    parcel.Status
	ChangedAt time.Time
	Comment   *string
}

// NewParcelView flattens an aggregate returned by a command into the read model.
func NewParcelView(p *parcel.Parcel) ParcelView {
	items := p.LineItems()
	views := make([]LineItemView, 0, len(items))
	for _, li := range items {
		views = append(views, LineItemView{
			ProductID:  li.ProductID(),
			Quantity:   li.Quantity(),
			UnitWeight: li.UnitWeight(),
		})
	}

	return ParcelView{
		ID:              p.ID(),
		Description:     p.Description(),
		Weight:          p.Weight(),
		Status:          p.Status(),
		Priority:        p.Priority(),
		DestinationCity: p.DestinationCity(),
		SenderID:        p.SenderID(),
		RecipientID:     p.RecipientID(),
		CourierID:       p.CourierID(),
		ZoneID:          p.ZoneID(),
		CreatedAt:       p.CreatedAt(),
		StatusChangedAt: p.StatusChangedAt(),
		Items:           views,
	}
}
