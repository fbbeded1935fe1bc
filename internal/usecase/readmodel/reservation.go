package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// ReservationRM is the read model for one reserved interval: committed
// up/down capacity and its pricing for an asset in a market at a point in
// time. Timestamps are naive at rest and treated as UTC on output. Values
// are stored in kW; callers see MW.
type ReservationRM struct {
	ID                    int64      `json:"id"`
	Timestamp             time.Time  `json:"timestamp"`
	AssetID               uuid.UUID  `json:"asset_id"`
	MarketID              uuid.UUID  `json:"market_id"`
	PositiveBidID         *uuid.UUID `json:"positive_bid_id,omitempty"`
	NegativeBidID         *uuid.UUID `json:"negative_bid_id,omitempty"`
	PositiveValue         float64    `json:"positive_value"`
	PositiveCapacityPrice float64    `json:"positive_capacity_price"`
	PositiveEnergyPrice   float64    `json:"positive_energy_price"`
	NegativeValue         float64    `json:"negative_value"`
	NegativeCapacityPrice float64    `json:"negative_capacity_price"`
	NegativeEnergyPrice   float64    `json:"negative_energy_price"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
