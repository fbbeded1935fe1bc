//go:build unit

package export_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"flex-reservations/internal/export"
	"flex-reservations/internal/usecase/readmodel"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAssetID  = uuid.MustParse("3f8a1f64-9f2e-4f44-bb1d-6f0a3c7e2d11")
	testMarketID = uuid.MustParse("b2a7c0de-5a31-4c8f-9b6a-1d2e3f4a5b6c")
	testPosBidID = uuid.MustParse("11111111-2222-3333-4444-555555555555")
	testNegBidID = uuid.MustParse("66666666-7777-8888-9999-aaaaaaaaaaaa")
)

func newReservation() *readmodel.ReservationRM {
	posBid := testPosBidID
	negBid := testNegBidID
	return &readmodel.ReservationRM{
		ID:                    1,
		Timestamp:             time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		AssetID:               testAssetID,
		MarketID:              testMarketID,
		PositiveBidID:         &posBid,
		NegativeBidID:         &negBid,
		PositiveValue:         5000,
		PositiveCapacityPrice: 10.5,
		PositiveEnergyPrice:   42.75,
		NegativeValue:         3000,
		NegativeCapacityPrice: 8.25,
		NegativeEnergyPrice:   37.5,
		UpdatedAt:             time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC),
	}
}

func parseCSV(t *testing.T, data string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestDetailedFormatter_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.DetailedFormatter{}, nil))

	records := parseCSV(t, buf.String())
	require.Len(t, records, 1)

	want := []string{
		"timestamp", "assetId", "marketId", "positiveBidId", "negativeBidId",
		"positiveValue", "positiveCapacityPrice", "positiveEnergyPrice",
		"negativeValue", "negativeCapacityPrice", "negativeEnergyPrice",
		"updatedAt",
	}
	assert.Empty(t, cmp.Diff(want, records[0]))
}

func TestTotalFormatter_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.TotalFormatter{}, nil))

	records := parseCSV(t, buf.String())
	require.Len(t, records, 1)

	want := []string{"timestamp", "assetId", "marketId", "positiveValue", "negativeValue"}
	assert.Empty(t, cmp.Diff(want, records[0]))
}

func TestDetailedFormatter_Row(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.DetailedFormatter{}, []*readmodel.ReservationRM{newReservation()}))

	records := parseCSV(t, buf.String())
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "2024-05-01T10:00:00Z", row[0])
	assert.Equal(t, testAssetID.String(), row[1])
	assert.Equal(t, testMarketID.String(), row[2])
	assert.Equal(t, testPosBidID.String(), row[3])
	assert.Equal(t, testNegBidID.String(), row[4])
	assert.Equal(t, "5.0", row[5], "positiveValue must be kW/1000")
	assert.Equal(t, "10.5", row[6])
	assert.Equal(t, "42.75", row[7])
	assert.Equal(t, "3.0", row[8], "negativeValue must be kW/1000")
	assert.Equal(t, "8.25", row[9])
	assert.Equal(t, "37.5", row[10])
	assert.Equal(t, "2024-05-02T08:30:00Z", row[11])
}

func TestDetailedFormatter_Row_NilBidIDs(t *testing.T) {
	r := newReservation()
	r.PositiveBidID = nil
	r.NegativeBidID = nil

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.DetailedFormatter{}, []*readmodel.ReservationRM{r}))

	records := parseCSV(t, buf.String())
	require.Len(t, records, 2)
	assert.Equal(t, "", records[1][3])
	assert.Equal(t, "", records[1][4])
}

func TestTotalFormatter_Row(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.TotalFormatter{}, []*readmodel.ReservationRM{newReservation()}))

	records := parseCSV(t, buf.String())
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "2024-05-01T10:00:00Z", row[0])
	assert.Equal(t, testAssetID.String(), row[1])
	assert.Equal(t, testMarketID.String(), row[2])
	assert.Equal(t, "5.0", row[3])
	assert.Equal(t, "3.0", row[4])
}

func TestWrite_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.TotalFormatter{}, nil))

	// exactly the header line with its terminator, nothing else
	assert.Equal(t, "timestamp,assetId,marketId,positiveValue,negativeValue\n", buf.String())
}

func TestWrite_ValueRendering(t *testing.T) {
	testCases := []struct {
		name       string
		positiveKW float64
		want       string
	}{
		{name: "integral quotient keeps .0", positiveKW: 5000, want: "5.0"},
		{name: "zero", positiveKW: 0, want: "0.0"},
		{name: "max int32 keeps full precision", positiveKW: 2147483647, want: "2147483.647"},
		{name: "fractional quotient", positiveKW: 1234.5, want: "1.2345"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newReservation()
			r.PositiveValue = tc.positiveKW

			var buf bytes.Buffer
			require.NoError(t, export.Write(&buf, export.TotalFormatter{}, []*readmodel.ReservationRM{r}))

			records := parseCSV(t, buf.String())
			require.Len(t, records, 2)
			assert.Equal(t, tc.want, records[1][3])
		})
	}
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestWrite_PropagatesWriterError(t *testing.T) {
	errSink := errors.New("sink closed")

	err := export.Write(&failingWriter{err: errSink}, export.DetailedFormatter{}, []*readmodel.ReservationRM{newReservation()})
	require.Error(t, err)
	assert.ErrorIs(t, err, errSink, "writer failures must propagate unmodified")
}
