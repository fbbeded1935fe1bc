// Package export serializes reservation read models to CSV. Two
// interchangeable strategies exist: DetailedFormatter emits one row per bid
// with prices, TotalFormatter emits summarized capacity rows. Both write
// header and rows incrementally so large exports never hold the whole
// document in formatter memory.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"flex-reservations/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type Formatter interface {
	WriteHeader(w *csv.Writer) error
	WriteRow(w *csv.Writer, r *readmodel.ReservationRM) error
}

// Write drives a formatter over rows into w. The header is always written,
// even for zero rows. Errors from the underlying writer surface unmodified.
func Write(w io.Writer, f Formatter, rows []*readmodel.ReservationRM) error {
	cw := csv.NewWriter(w)

	if err := f.WriteHeader(cw); err != nil {
		return err
	}
	for _, r := range rows {
		if err := f.WriteRow(cw, r); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type DetailedFormatter struct{}

func (DetailedFormatter) WriteHeader(w *csv.Writer) error {
	return w.Write([]string{
		"timestamp", "assetId", "marketId", "positiveBidId", "negativeBidId",
		"positiveValue", "positiveCapacityPrice", "positiveEnergyPrice",
		"negativeValue", "negativeCapacityPrice", "negativeEnergyPrice",
		"updatedAt",
	})
}

func (DetailedFormatter) WriteRow(w *csv.Writer, r *readmodel.ReservationRM) error {
	return w.Write([]string{
		formatTimestamp(r.Timestamp),
		r.AssetID.String(),
		r.MarketID.String(),
		formatUUIDPtr(r.PositiveBidID),
		formatUUIDPtr(r.NegativeBidID),
		formatValue(r.PositiveValue / 1000),
		formatValue(r.PositiveCapacityPrice),
		formatValue(r.PositiveEnergyPrice),
		formatValue(r.NegativeValue / 1000),
		formatValue(r.NegativeCapacityPrice),
		formatValue(r.NegativeEnergyPrice),
		formatTimestamp(r.UpdatedAt),
	})
}

type TotalFormatter struct{}

func (TotalFormatter) WriteHeader(w *csv.Writer) error {
	return w.Write([]string{
		"timestamp", "assetId", "marketId", "positiveValue", "negativeValue",
	})
}

func (TotalFormatter) WriteRow(w *csv.Writer, r *readmodel.ReservationRM) error {
	return w.Write([]string{
		formatTimestamp(r.Timestamp),
		r.AssetID.String(),
		r.MarketID.String(),
		formatValue(r.PositiveValue / 1000),
		formatValue(r.NegativeValue / 1000),
	})
}

// Stored timestamps are naive; exports render them UTC-zoned.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatUUIDPtr(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// formatValue renders the shortest faithful decimal text, keeping a trailing
// ".0" on integral values so output stays compatible with existing exports
// ("5.0", "0.0", "2147483.647").
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
