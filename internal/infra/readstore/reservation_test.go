//go:build unit

package readstore

import (
	"testing"
	"time"

	"flex-reservations/internal/usecase/readmodel"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestRowToReservationRM(t *testing.T) {
	assetID := uuid.MustParse("3f8a1f64-9f2e-4f44-bb1d-6f0a3c7e2d11")
	marketID := uuid.MustParse("b2a7c0de-5a31-4c8f-9b6a-1d2e3f4a5b6c")
	posBid := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)

	row := reservationRow{
		ID:                    42,
		Timestamp:             pgtype.Timestamp{Time: ts, Valid: true},
		AssetID:               assetID,
		MarketID:              marketID,
		PositiveBidID:         pgtype.UUID{Bytes: posBid, Valid: true},
		NegativeBidID:         pgtype.UUID{}, // NULL column
		PositiveValue:         5000,
		PositiveCapacityPrice: 10.5,
		PositiveEnergyPrice:   42.75,
		NegativeValue:         3000,
		NegativeCapacityPrice: 8.25,
		NegativeEnergyPrice:   37.5,
		UpdatedAt:             pgtype.Timestamp{Time: updated, Valid: true},
	}

	got := rowToReservationRM(row)

	want := &readmodel.ReservationRM{
		ID:                    42,
		Timestamp:             ts,
		AssetID:               assetID,
		MarketID:              marketID,
		PositiveBidID:         &posBid,
		NegativeBidID:         nil,
		PositiveValue:         5000,
		PositiveCapacityPrice: 10.5,
		PositiveEnergyPrice:   42.75,
		NegativeValue:         3000,
		NegativeCapacityPrice: 8.25,
		NegativeEnergyPrice:   37.5,
		UpdatedAt:             updated,
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestRowToReservationRM_NullBidIDsBecomeNilPointers(t *testing.T) {
	got := rowToReservationRM(reservationRow{
		PositiveBidID: pgtype.UUID{},
		NegativeBidID: pgtype.UUID{},
	})

	assert.Nil(t, got.PositiveBidID)
	assert.Nil(t, got.NegativeBidID)
}
