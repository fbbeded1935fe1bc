package readstore

import (
	"context"
	"time"

	"flex-reservations/internal/infra"
	"flex-reservations/internal/pkg/pgconv"
	"flex-reservations/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `
	id, timestamp, asset_id, market_id,
	positive_bid_id, negative_bid_id,
	positive_value, positive_capacity_price, positive_energy_price,
	negative_value, negative_capacity_price, negative_energy_price,
	updated_at`

const findByAssetAndMarketSQL = `
SELECT` + reservationColumns + `
FROM reservations
WHERE asset_id = $1 AND market_id = $2
ORDER BY id`

const findByAssetMarketAndRangeSQL = `
SELECT` + reservationColumns + `
FROM reservations
WHERE asset_id = $1 AND market_id = $2
  AND timestamp BETWEEN $3 AND $4
ORDER BY id`

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{
		pool: pool,
	}
}

func (r *ReservationReadStore) FindByAssetAndMarket(ctx context.Context, assetID, marketID uuid.UUID) ([]*readmodel.ReservationRM, error) {
	rows, err := r.pool.Query(ctx, findByAssetAndMarketSQL, assetID, marketID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by asset and market", err)
	}

	result, err := collectReservations(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations by asset and market", err)
	}
	return result, nil
}

func (r *ReservationReadStore) FindByAssetMarketAndRange(ctx context.Context, assetID, marketID uuid.UUID, from, to time.Time) ([]*readmodel.ReservationRM, error) {
	args := []any{
		assetID, marketID,
		pgconv.TimeToTimestamp(from), pgconv.TimeToTimestamp(to),
	}
	rows, err := r.pool.Query(ctx, findByAssetMarketAndRangeSQL, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by asset, market and range", err)
	}

	result, err := collectReservations(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations by asset, market and range", err)
	}
	return result, nil
}

type reservationRow struct {
	ID                    int64
	Timestamp             pgtype.Timestamp
	AssetID               uuid.UUID
	MarketID              uuid.UUID
	PositiveBidID         pgtype.UUID
	NegativeBidID         pgtype.UUID
	PositiveValue         float64
	PositiveCapacityPrice float64
	PositiveEnergyPrice   float64
	NegativeValue         float64
	NegativeCapacityPrice float64
	NegativeEnergyPrice   float64
	UpdatedAt             pgtype.Timestamp
}

func collectReservations(rows pgx.Rows) ([]*readmodel.ReservationRM, error) {
	defer rows.Close()

	result := make([]*readmodel.ReservationRM, 0)
	for rows.Next() {
		var row reservationRow
		if err := rows.Scan(
			&row.ID, &row.Timestamp, &row.AssetID, &row.MarketID,
			&row.PositiveBidID, &row.NegativeBidID,
			&row.PositiveValue, &row.PositiveCapacityPrice, &row.PositiveEnergyPrice,
			&row.NegativeValue, &row.NegativeCapacityPrice, &row.NegativeEnergyPrice,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, rowToReservationRM(row))
	}
	return result, rows.Err()
}

func rowToReservationRM(row reservationRow) *readmodel.ReservationRM {
	return &readmodel.ReservationRM{
		ID:                    row.ID,
		Timestamp:             pgconv.TimeFromTimestamp(row.Timestamp),
		AssetID:               row.AssetID,
		MarketID:              row.MarketID,
		PositiveBidID:         pgconv.UUIDPtrFromPgtype(row.PositiveBidID),
		NegativeBidID:         pgconv.UUIDPtrFromPgtype(row.NegativeBidID),
		PositiveValue:         row.PositiveValue,
		PositiveCapacityPrice: row.PositiveCapacityPrice,
		PositiveEnergyPrice:   row.PositiveEnergyPrice,
		NegativeValue:         row.NegativeValue,
		NegativeCapacityPrice: row.NegativeCapacityPrice,
		NegativeEnergyPrice:   row.NegativeEnergyPrice,
		UpdatedAt:             pgconv.TimeFromTimestamp(row.UpdatedAt),
	}
}
