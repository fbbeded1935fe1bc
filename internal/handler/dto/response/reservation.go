package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"flex-reservations/internal/usecase/readmodel"
)

// Stored timestamps are naive; the JSON contract keeps them that way.
const naiveDateTime = "2006-01-02T15:04:05"

type ReservationResponse struct {
	ID                    int64      `json:"id"`
	Timestamp             string     `json:"timestamp"`
	AssetID               uuid.UUID  `json:"assetId"`
	MarketID              uuid.UUID  `json:"marketId"`
	PositiveBidID         *uuid.UUID `json:"positiveBidId"`
	NegativeBidID         *uuid.UUID `json:"negativeBidId"`
	PositiveValue         float64    `json:"positiveValue"`
	PositiveCapacityPrice float64    `json:"positiveCapacityPrice"`
	PositiveEnergyPrice   float64    `json:"positiveEnergyPrice"`
	NegativeValue         float64    `json:"negativeValue"`
	NegativeCapacityPrice float64    `json:"negativeCapacityPrice"`
	NegativeEnergyPrice   float64    `json:"negativeEnergyPrice"`
	UpdatedAt             string     `json:"updatedAt"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	var resp ReservationResponse
	// copier matches fields by name; the time.Time fields are formatted below
	_ = copier.Copy(&resp, rm)
	resp.Timestamp = rm.Timestamp.Format(naiveDateTime)
	resp.UpdatedAt = rm.UpdatedAt.Format(naiveDateTime)
	return &resp
}
