package queries

import (
	"bytes"
	"context"
	"time"

	"flex-reservations/internal/export"
	"flex-reservations/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// ReservationReadStore is the storage collaborator: two read-only queries.
// Range bounds are inclusive and compared against the naive timestamp column.
type ReservationReadStore interface {
	FindByAssetAndMarket(ctx context.Context, assetID, marketID uuid.UUID) ([]*readmodel.ReservationRM, error)
	FindByAssetMarketAndRange(ctx context.Context, assetID, marketID uuid.UUID, from, to time.Time) ([]*readmodel.ReservationRM, error)
}

type ReservationQueries interface {
	// ListByAssetAndMarket returns matching reservations with kW->MW
	// conversion applied. An empty result is a valid outcome, not an error.
	ListByAssetAndMarket(ctx context.Context, assetID, marketID uuid.UUID) ([]*readmodel.ReservationRM, error)
	// ListByAssetMarketAndRange returns reservations within [from, to],
	// aggregated per (timestamp, asset, market) when total is set. Values
	// stay in kW on this path; the export formatters convert.
	ListByAssetMarketAndRange(ctx context.Context, assetID, marketID uuid.UUID, from, to time.Time, total bool) ([]*readmodel.ReservationRM, error)
	// ExportCSV serializes the range result with the Detailed formatter, or
	// the Total formatter when total is set.
	ExportCSV(ctx context.Context, assetID, marketID uuid.UUID, from, to time.Time, total bool) (string, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) ListByAssetAndMarket(ctx context.Context, assetID, marketID uuid.UUID) ([]*readmodel.ReservationRM, error) {
	rows, err := q.readStore.FindByAssetAndMarket(ctx, assetID, marketID)
	if err != nil {
		return nil, err
	}

	convertKWToMW(rows)
	return rows, nil
}

func (q *reservationQueriesImpl) ListByAssetMarketAndRange(ctx context.Context, assetID, marketID uuid.UUID, from, to time.Time, total bool) ([]*readmodel.ReservationRM, error) {
	rows, err := q.readStore.FindByAssetMarketAndRange(ctx, assetID, marketID, toNaive(from), toNaive(to))
	if err != nil {
		return nil, err
	}

	if total {
		return aggregate(rows), nil
	}
	return rows, nil
}

func (q *reservationQueriesImpl) ExportCSV(ctx context.Context, assetID, marketID uuid.UUID, from, to time.Time, total bool) (string, error) {
	rows, err := q.ListByAssetMarketAndRange(ctx, assetID, marketID, from, to, total)
	if err != nil {
		return "", err
	}

	var formatter export.Formatter = export.DetailedFormatter{}
	if total {
		formatter = export.TotalFormatter{}
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, formatter, rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Conversion happens exactly once per call path: here for the plain list
// path, inside the formatters for the export path.
func convertKWToMW(rows []*readmodel.ReservationRM) {
	for _, r := range rows {
		r.PositiveValue /= 1000
		r.NegativeValue /= 1000
	}
}

// toNaive discards the offset, keeping the wall clock: stored timestamps
// carry no zone, so 10:00+02:00 queries the 10:00 interval.
func toNaive(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	return time.Date(year, month, day, hour, minute, sec, t.Nanosecond(), time.UTC)
}

type aggregationKey struct {
	timestamp int64
	assetID   uuid.UUID
	marketID  uuid.UUID
}

// aggregate sums positive and negative values of records sharing the same
// (timestamp, asset, market) tuple. Prices and bid ids keep the first-seen
// record's values; bid identity never discriminates. Output preserves
// first-seen order and never mutates the input rows.
func aggregate(rows []*readmodel.ReservationRM) []*readmodel.ReservationRM {
	grouped := make(map[aggregationKey]*readmodel.ReservationRM, len(rows))
	result := make([]*readmodel.ReservationRM, 0, len(rows))

	for _, r := range rows {
		key := aggregationKey{
			timestamp: r.Timestamp.UnixNano(),
			assetID:   r.AssetID,
			marketID:  r.MarketID,
		}

		if existing, ok := grouped[key]; ok {
			existing.PositiveValue += r.PositiveValue
			existing.NegativeValue += r.NegativeValue
			continue
		}

		merged := *r
		grouped[key] = &merged
		result = append(result, &merged)
	}

	return result
}
