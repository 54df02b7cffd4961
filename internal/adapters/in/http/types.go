package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewParcelItem struct {
	ProductID openapi_types.UUID `json:"productId" validate:"required"`
	Quantity  int                `json:"quantity"`
}

type NewParcel struct {
	SenderID        *openapi_types.UUID `json:"senderId,omitempty"`
	RecipientID     openapi_types.UUID  `json:"recipientId" validate:"required"`
	Description     string              `json:"description,omitempty" validate:"max=1000"`
	Priority        *string             `json:"priority,omitempty"`
	DestinationCity string              `json:"destinationCity,omitempty" validate:"max=128"`
	Items           []NewParcelItem     `json:"items" validate:"required,dive"`
}

type LineItem struct {
	ProductID  openapi_types.UUID `json:"productId"`
	Quantity   int                `json:"quantity"`
	UnitWeight float64            `json:"unitWeight"`
}

type Parcel struct {
	ID              openapi_types.UUID  `json:"id"`
	Description     string              `json:"description"`
	Weight          float64             `json:"weight"`
	Status          string              `json:"status"`
	Priority        string              `json:"priority"`
	DestinationCity string              `json:"destinationCity"`
	SenderID        openapi_types.UUID  `json:"senderId"`
	RecipientID     openapi_types.UUID  `json:"recipientId"`
	CourierID       *openapi_types.UUID `json:"courierId"`
	ZoneID          *openapi_types.UUID `json:"zoneId"`
	CreatedAt       time.Time           `json:"createdAt"`
	StatusChangedAt time.Time           `json:"statusChangedAt"`
	Items           []LineItem          `json:"items"`
}

type StatusUpdate struct {
	Status  string  `json:"status" validate:"required"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type HistoryEntry struct {
	ID        openapi_types.UUID `json:"id"`
	Status    string             `json:"status"`
	ChangedAt time.Time          `json:"changedAt"`
	Comment   *string            `json:"comment,omitempty"`
}

type NewActor struct {
	Role    string              `json:"role" validate:"required"`
	Name    string              `json:"name" validate:"required,max=128"`
	Phone   string              `json:"phone,omitempty" validate:"max=32"`
	Email   string              `json:"email" validate:"required,email"`
	Vehicle string              `json:"vehicle,omitempty"`
	ZoneID  *openapi_types.UUID `json:"zoneId,omitempty"`
	Address string              `json:"address,omitempty"`
}

type Actor struct {
	ID      openapi_types.UUID  `json:"id"`
	Role    string              `json:"role"`
	Name    string              `json:"name"`
	Phone   string              `json:"phone,omitempty"`
	Email   string              `json:"email"`
	Vehicle string              `json:"vehicle,omitempty"`
	ZoneID  *openapi_types.UUID `json:"zoneId,omitempty"`
	Address string              `json:"address,omitempty"`
}

type NewProduct struct {
	Name   string  `json:"name" validate:"required,max=128"`
	Weight float64 `json:"weight" validate:"gt=0"`
}

type Product struct {
	ID     openapi_types.UUID `json:"id"`
	Name   string             `json:"name"`
	Weight float64            `json:"weight"`
}

type NewZone struct {
	Name       string `json:"name" validate:"required,max=128"`
	PostalCode string `json:"postalCode" validate:"required,max=16"`
}

type Zone struct {
	ID         openapi_types.UUID `json:"id"`
	Name       string             `json:"name"`
	PostalCode string             `json:"postalCode"`
}

// ListParcelsParams are the query parameters of GET /parcels.
type ListParcelsParams struct {
	Status []string `form:"status,omitempty" json:"status,omitempty"`
	Limit  *int     `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int     `form:"offset,omitempty" json:"offset,omitempty"`
}
